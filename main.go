package main

import "video-id-finder/cmd"

func main() {
	cmd.Execute()
}
