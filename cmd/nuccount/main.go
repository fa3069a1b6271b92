// cmd/nuccount/main.go
package main

import (
	"nuccount/internal/app"
	"nuccount/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
