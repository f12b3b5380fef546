package main

import "github.com/abhi9vaidya/Guitariz-sub000/cmd"

func main() {
	cmd.Execute()
}
