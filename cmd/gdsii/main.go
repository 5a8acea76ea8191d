/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/ssargent/gdsii/cmd/gdsii/cmd"
)

func main() {
	cmd.Execute()
}
