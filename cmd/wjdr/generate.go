package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/orchestrators/generation"
	"github.com/oldworld/wjdr-api/internal/pkg/idgen"
)

var (
	generateName   string
	generateRace   string
	generateGender string
	generateSeed   int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Roll a starting character",
	Long:  `Roll starting attributes and money for a new character and print the sheet.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateName, "name", "Sans-nom", "character name")
	generateCmd.Flags().StringVar(&generateRace, "race", "human", "race: human, elf, dwarf or halfling")
	generateCmd.Flags().StringVar(&generateGender, "gender", "male", "gender: male or female")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed (0 uses the current time)")
}

func parseRace(s string) (wjdr.Race, error) {
	switch strings.ToLower(s) {
	case "human":
		return wjdr.RaceHuman, nil
	case "elf":
		return wjdr.RaceElf, nil
	case "dwarf":
		return wjdr.RaceDwarf, nil
	case "halfling":
		return wjdr.RaceHalfling, nil
	default:
		return "", fmt.Errorf("unknown race %q", s)
	}
}

func parseGender(s string) (wjdr.Gender, error) {
	switch strings.ToLower(s) {
	case "male":
		return wjdr.GenderMale, nil
	case "female":
		return wjdr.GenderFemale, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	race, err := parseRace(generateRace)
	if err != nil {
		return err
	}
	gender, err := parseGender(generateGender)
	if err != nil {
		return err
	}

	orchestrator, err := generation.New(&generation.Config{Rand: newRand(generateSeed)})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	attributes, err := orchestrator.RollAttributes(ctx, &generation.RollAttributesInput{Race: race})
	if err != nil {
		return err
	}
	money, err := orchestrator.RollStartingMoney(ctx, &generation.RollStartingMoneyInput{})
	if err != nil {
		return err
	}

	character, err := wjdr.NewCharacter(wjdr.Character{
		ID:                  idgen.NewUUID("char").Generate(),
		Name:                generateName,
		Gender:              gender,
		Race:                race,
		PrimaryAttributes:   attributes.Primary,
		SecondaryAttributes: attributes.Secondary,
		Inventory:           wjdr.Inventory{Money: money.Money},
	})
	if err != nil {
		return err
	}

	printSheet(character)
	return nil
}

func printSheet(c *wjdr.Character) {
	fmt.Printf("%s (%s, %s)\n", c.Name, c.Race, c.Gender)
	fmt.Printf("id: %s\n\n", c.ID)

	fmt.Println("Primary attributes:")
	for _, name := range wjdr.PrimaryAttributeNames() {
		attr := c.PrimaryAttributes.Get(name)
		fmt.Printf("  %-18s %3d (bonus %d)\n", name, attr.Actual(), attr.Bonus())
	}

	fmt.Println("\nSecondary attributes:")
	for _, name := range wjdr.SecondaryAttributeNames() {
		fmt.Printf("  %-18s %3d\n", name, c.SecondaryAttributes.Get(name).Actual())
	}

	fmt.Printf("\nPurse: %s\n", c.Inventory.Money)
	fmt.Printf("Carrying capacity: %d\n", c.MaxClutter())
}
