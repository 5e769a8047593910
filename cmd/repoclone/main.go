package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsukasa-au/repoclone/internal/classifier"
	"github.com/tsukasa-au/repoclone/internal/config"
	"github.com/tsukasa-au/repoclone/internal/domain"
	"github.com/tsukasa-au/repoclone/internal/git"
	"github.com/tsukasa-au/repoclone/internal/utils"
	"github.com/tsukasa-au/repoclone/internal/workspace"
	"github.com/tsukasa-au/repoclone/pkg/version"
)

var (
	cfgFile string
	verbose bool
	mirror  bool
	shallow bool
	log     *utils.Logger

	// Dependencies for testing
	execLookPath = exec.LookPath
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(domain.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "repoclone [flags] <clone-url>",
	Short: "Clone a git repository into a host/user/project tree",
	Long: `repoclone decodes a git clone URL (HTTPS, SSH shorthand, git://,
Sourceforge, googlesource, gists, nested groups, kernel.org) and clones
the repository into $HOME/Projects/src/<domain>/<user>/<project>.

Example usage:
  repoclone https://github.com/tsukasa-au/micropython.git
  repoclone --shallow git@github.com:tsukasa-au/micropython.git
  repoclone --mirror https://git.code.sf.net/p/mcomix/git`,
	Version:      version.Short(),
	Args:         exactlyOneURL,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVar(&mirror, "mirror", false, "Clone all refs as a bare mirror")
	rootCmd.Flags().BoolVar(&shallow, "shallow", false, "Clone only the latest commit (depth 1)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.repoclone/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("root", "", "Destination tree root (default is $HOME/Projects/src)")
	rootCmd.PersistentFlags().String("backend", "", "Clone backend: auto, git or go-git")

	// Bind flags to viper
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("git.backend", rootCmd.PersistentFlags().Lookup("backend"))

	// Add subcommands
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(linkCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// exactlyOneURL enforces the single-positional contract with a message
// naming what was actually received.
func exactlyOneURL(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one clone URL, got %d arguments: %q", len(args), args)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	opts := domain.CloneOptions{Mirror: mirror, Shallow: shallow}

	// Conflicting options are a usage error and abort before any
	// filesystem or subprocess side effect.
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	url := args[0]

	c := classifier.New(cfg.Rewrites)
	id, err := c.Classify(url)
	if err != nil {
		return err
	}
	log.Debug().
		Str("domain", id.Domain).
		Str("user", id.User).
		Str("project", id.Project).
		Msg("decoded clone URL")

	cloner, err := git.NewCloner(cfg.Git, log)
	if err != nil {
		return err
	}

	m := workspace.NewMaterializer(cfg.Root, cloner, log)
	return m.Clone(context.Background(), id, url, opts)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Verifies that the git binary, home directory, and destination root are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking system dependencies...")
		allPassed := true

		fmt.Print("  git binary: ")
		if path, err := execLookPath("git"); err == nil {
			fmt.Printf("OK (%s)\n", path)
		} else {
			fmt.Println("NOT FOUND (clones will run in-process via go-git)")
		}

		fmt.Print("  Home directory: ")
		root, err := config.DefaultRoot()
		if err != nil {
			fmt.Printf("FAILED (%v)\n", err)
			allPassed = false
		} else {
			fmt.Println("OK")
		}

		fmt.Print("  Destination root: ")
		if err == nil && checkRootWritable(root) {
			fmt.Printf("OK (%s)\n", root)
		} else {
			fmt.Println("FAILED")
			allPassed = false
		}

		fmt.Print("  Config file: ")
		if _, err := config.Load(); err != nil {
			fmt.Printf("WARN (%v)\n", err)
		} else {
			fmt.Println("OK")
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkRootWritable checks that the destination root can be created and
// written to
func checkRootWritable(root string) bool {
	if err := workspace.EnsurePath(root); err != nil {
		return false
	}
	f, err := os.CreateTemp(root, ".repoclone_test_write")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

var linkCmd = &cobra.Command{
	Use:   "link <file>",
	Short: "Symlink a script into ~/bin",
	Long:  "Installs a symlink to the given file in the personal bin directory, creating it if needed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		binDir, err := config.BinDir()
		if err != nil {
			return err
		}
		link, err := workspace.InstallBinLink(binDir, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Linked %s -> %s\n", link, args[0])
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
