package main

import (
	"fmt"
	"io"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"github.com/avg-cs-student/jcblocks/internal/canvas"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print an empty board and every basic shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func runDemo(w io.Writer) error {
	c := canvas.Default()
	fmt.Fprint(w, c)
	fmt.Fprintf(w, "Completed rows:\t%v\n", c.CompletedRows())
	fmt.Fprintf(w, "Completed columns:\t%v\n", c.CompletedColumns())

	for width := 1; width <= block.MaxRectangleEdge; width++ {
		for height := 1; height <= block.MaxRectangleEdge; height++ {
			fmt.Fprintf(w, "Rectangle [%dx%d]:\n%s", height, width, block.NewRectangle(height, width))
		}
	}
	fmt.Fprintf(w, "Tee:\n%s", block.NewTee())
	return nil
}
