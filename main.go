package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/nivandosoares/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
