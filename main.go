package main

import "github.com/NorthPeak-Exteriors/site-backend/cmd"

func main() {
	cmd.Init()
}
