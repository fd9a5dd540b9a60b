package main

import "github.com/anton-3/course-correct/cmd"

func main() {
	cmd.Execute()
}
