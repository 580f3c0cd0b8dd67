package main

import "getapet-backend/cmd"

func main() {
	cmd.Run()
}
