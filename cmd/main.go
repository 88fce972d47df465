package main

import cmd "github.com/kerbaras/bookshelf/cmd/bookshelf"

func main() {
	cmd.Execute()
}
