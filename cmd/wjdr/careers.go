package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oldworld/wjdr-api/internal/entities/wjdr"
	"github.com/oldworld/wjdr-api/internal/redis"
	careerrepo "github.com/oldworld/wjdr-api/internal/repositories/career"
)

var (
	careersRedisAddr      string
	careersSentinelMaster string
	careersSentinelAddrs  []string
	careersBasicOnly      bool
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Inspect the career catalog",
}

var careersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List careers in the catalog",
	RunE:  runCareersList,
}

var careersShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one career template",
	Args:  cobra.ExactArgs(1),
	RunE:  runCareersShow,
}

func init() {
	careersCmd.PersistentFlags().StringVar(&careersRedisAddr, "redis-addr", "localhost:6379", "redis address of the catalog")
	careersCmd.PersistentFlags().StringVar(&careersSentinelMaster, "redis-sentinel-master", "", "sentinel master name (enables sentinel mode)")
	careersCmd.PersistentFlags().StringSliceVar(&careersSentinelAddrs, "redis-sentinel", nil, "sentinel addresses")
	careersListCmd.Flags().BoolVar(&careersBasicOnly, "basic", false, "only list basic careers")
	careersCmd.AddCommand(careersListCmd)
	careersCmd.AddCommand(careersShowCmd)
	rootCmd.AddCommand(careersCmd)
}

func newCareerRepo() (careerrepo.Repository, error) {
	var (
		client redis.Client
		err    error
	)
	if careersSentinelMaster != "" {
		client, err = redis.NewFailoverClient(careersSentinelMaster, careersSentinelAddrs, nil)
	} else {
		client, err = redis.NewClient(careersRedisAddr, nil)
	}
	if err != nil {
		return nil, err
	}
	return careerrepo.NewRedis(&careerrepo.RedisConfig{Client: client})
}

func runCareersList(cmd *cobra.Command, args []string) error {
	repo, err := newCareerRepo()
	if err != nil {
		return err
	}

	output, err := repo.List(cmd.Context(), careerrepo.ListInput{BasicOnly: careersBasicOnly})
	if err != nil {
		return err
	}

	for _, career := range output.Careers {
		kind := "advanced"
		if career.Basic {
			kind = "basic"
		}
		fmt.Printf("%-30s %-8s %4d xp\n", career.Name, kind, career.ExperienceAmount())
	}
	fmt.Printf("%d careers\n", len(output.Careers))
	return nil
}

func runCareersShow(cmd *cobra.Command, args []string) error {
	repo, err := newCareerRepo()
	if err != nil {
		return err
	}

	output, err := repo.Get(cmd.Context(), careerrepo.GetInput{Name: args[0]})
	if err != nil {
		return err
	}
	career := output.Career

	fmt.Printf("%s", career.Name)
	if career.Basic {
		fmt.Printf(" (basic)")
	}
	fmt.Printf("\ncompletion cost: %d xp\n\n", career.ExperienceAmount())

	fmt.Println("Primary targets:")
	for _, name := range wjdr.PrimaryAttributeNames() {
		if target := career.PrimaryTarget(name); target > 0 {
			fmt.Printf("  %-18s +%d\n", name, target)
		}
	}
	fmt.Println("Secondary targets:")
	for _, name := range wjdr.SecondaryAttributeNames() {
		if target := career.SecondaryTarget(name); target > 0 {
			fmt.Printf("  %-18s +%d\n", name, target)
		}
	}

	if len(career.Skills) > 0 {
		fmt.Println("Skill slots:")
		for _, slot := range career.Skills {
			fmt.Printf("  %s\n", skillSlotLine(slot))
		}
	}
	if len(career.Talents) > 0 {
		fmt.Println("Talent slots:")
		for _, slot := range career.Talents {
			names := make([]string, 0, len(slot.Alternatives))
			for _, talent := range slot.Alternatives {
				names = append(names, talent.Name)
			}
			fmt.Printf("  %s\n", joinAlternatives(names))
		}
	}
	if len(career.Endowments) > 0 {
		fmt.Println("Endowments:")
		for _, endowment := range career.Endowments {
			fmt.Printf("  %s\n", endowment)
		}
	}
	if !career.StartingMoney.IsZero() {
		fmt.Printf("Starting money: %s\n", career.StartingMoney)
	}
	if len(career.AccessibleCareers) > 0 {
		fmt.Println("Leads to:")
		for _, next := range career.AccessibleCareers {
			fmt.Printf("  %s\n", next)
		}
	}
	return nil
}

func skillSlotLine(slot wjdr.SkillSlot) string {
	names := make([]string, 0, len(slot.Alternatives))
	for _, skill := range slot.Alternatives {
		name := skill.Name
		if skill.Specialization != "" {
			name = fmt.Sprintf("%s (%s)", name, skill.Specialization)
		}
		names = append(names, name)
	}
	return joinAlternatives(names)
}

func joinAlternatives(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	line := names[0]
	for _, name := range names[1:] {
		line += " ou " + name
	}
	return line
}
