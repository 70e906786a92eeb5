package main

import "github.com/folio/backend/internal/cli"

func main() {
	cli.Execute()
}
