package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/games/dino"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List obstacle variants",
	Long: `Shows every obstacle variant the spawner knows about.

Enable or disable variants with obstacles.variants in dino.yaml.`,
	Args: cobra.NoArgs,
	Run:  runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := dino.Variants()

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, v := range variants {
		if len(v.Kind) > maxKindLen {
			maxKindLen = len(v.Kind)
		}
	}

	fmt.Println("Obstacle variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxKindLen, "Kind", "Description")
	fmt.Printf("  %-*s  %s\n", maxKindLen, "----", "-----------")
	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxKindLen, v.Kind, v.Description)
	}
}
