package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bagend/chestman/internal/config"
	"github.com/bagend/chestman/internal/gui"
	"github.com/bagend/chestman/internal/stack"
)

// loadStore reads the store from the config file, or starts fresh when no
// file exists yet.
func loadStore() (*config.Store, error) {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return config.New(), nil
		}
		return nil, fmt.Errorf("checking config %s: %w", configPath, err)
	}
	return config.Load(configPath)
}

func persist(store *config.Store) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	_, err := store.Write(configPath)
	return err
}

// --- register ---

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a chest or save repo to manage",
}

var registerChestCmd = &cobra.Command{
	Use:   "chest <minecraft-root>",
	Short: "Register an EnderChest installation",
	Long: `Register an EnderChest installation.

The argument is the minecraft root: the parent directory of the EnderChest
folder. The installation is validated before it is stored.

Examples:
  chestman register chest ~/minecraft
  chestman register chest /mnt/games/minecraft`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		if err := store.RegisterChest(args[0]); err != nil {
			return err
		}
		if err := persist(store); err != nil {
			return err
		}
		printSuccess("Registered chest at %s", args[0])
		return nil
	},
}

var registerSaveCmd = &cobra.Command{
	Use:   "save <manifest-path>",
	Short: "Register a GSB-tracked save repo",
	Long: `Register a GSB-tracked save repo.

The argument may be the .gsb_manifest file itself or any directory inside the
repo; the repo's canonical root is stored either way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		if err := store.RegisterSave(args[0]); err != nil {
			return err
		}
		if err := persist(store); err != nil {
			return err
		}
		printSuccess("Registered save repo for %s", args[0])
		return nil
	},
}

func init() {
	registerCmd.AddCommand(registerChestCmd)
	registerCmd.AddCommand(registerSaveCmd)
	rootCmd.AddCommand(registerCmd)
}

// --- list ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered chests and save repos",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		fmt.Println(colorize(colorBold, "Ender chests:"))
		chests := store.Chests()
		for i, root := range store.ChestRoots() {
			fmt.Printf("  %s (%s, %d instances)\n", root, chests[i].Name, chests[i].Instances)
		}
		if len(chests) == 0 {
			fmt.Println("  (none)")
		}

		fmt.Println(colorize(colorBold, "Saves:"))
		saves := store.Saves()
		for _, m := range saves {
			fmt.Printf("  %s (%s)\n", m.Root, m.Name)
		}
		if len(saves) == 0 {
			fmt.Println("  (none)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// --- write ---

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Render the configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		store, err := loadStore()
		if err != nil {
			return err
		}

		rendered, err := store.Write(output)
		if err != nil {
			return err
		}
		if output != "" {
			printSuccess("Config written to %s", output)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	writeCmd.Flags().StringP("output", "o", "", "write the rendering to a file (default: stdout)")
	rootCmd.AddCommand(writeCmd)
}

// --- stack ---

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Report OS, runtime, rsync, and dependency versions",
	Run: func(cmd *cobra.Command, args []string) {
		stack.Fprint(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(stackCmd)
}

// --- gui ---

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the chestman window",
	Run: func(cmd *cobra.Command, args []string) {
		gui.Run(windowTitle())
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
