package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KarpelesLab/filestation"
	"github.com/KarpelesLab/pjson"
	"github.com/KarpelesLab/webutil"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile   string
	noLogin   bool
	overwrite bool
	output    string
)

var errorLabel = color.New(color.FgRed)

var rootCmd = &cobra.Command{
	Use:   "filestation [command]",
	Short: "Call the File Station API of a Synology NAS",
	Long: `filestation calls the File Station API of a Synology NAS.

Connection settings are read from SYNOLOGY_* environment variables, or from a
.env file in the current directory.

Examples:
  filestation ops
  filestation call list_share
  filestation call list_folder 'folder_path=/home&additional=["size"]'
  filestation upload /home/docs report.pdf
  filestation download /home/docs/report.pdf -o report.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "environment file to load")
	rootCmd.PersistentFlags().BoolVar(&noLogin, "no-login", false, "do not log in before the call")

	uploadCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing files")
	downloadCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: base name of the path)")

	rootCmd.AddCommand(opsCmd, callCmd, uploadCmd, downloadCmd)
}

func main() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient() (*filestation.Client, error) {
	_ = godotenv.Load(envFile) // no error if the file doesn't exist

	cfg, err := filestation.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return filestation.New(cfg)
}

// session creates a client and logs in unless --no-login was given. The
// returned func logs out.
func session(ctx context.Context) (*filestation.Client, func(), error) {
	cl, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	if noLogin {
		return cl, func() {}, nil
	}
	if _, err := cl.Login(ctx); err != nil {
		return nil, nil, fmt.Errorf("login failed: %w", err)
	}
	return cl, func() { cl.Logout(ctx) }, nil
}

// parseParams accepts either a JSON object or a url encoded query.
func parseParams(s string) (filestation.Param, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] == '{' {
		var p filestation.Param
		if err := pjson.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("invalid JSON parameters: %w", err)
		}
		return p, nil
	}
	return webutil.ParsePhpQuery(s), nil
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eps, err := filestation.Flatten(filestation.DefaultRegistry())
		if err != nil {
			return err
		}
		ops := make([]string, 0, len(eps))
		for op := range eps {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		for _, op := range ops {
			ep := eps[op]
			fmt.Printf("%-32s %s v%d %s\n", op, ep.Api, ep.Version, ep.Method)
		}
		return nil
	},
}

var callCmd = &cobra.Command{
	Use:   "call <operation> [params]",
	Short: "Invoke an operation and print its JSON response",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if len(args) > 1 {
			raw = args[1]
		}
		p, err := parseParams(raw)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		cl, done, err := session(ctx)
		if err != nil {
			return err
		}
		defer done()

		res, err := cl.Do(ctx, args[0], p)
		if err != nil {
			var apiErr *filestation.Error
			if errors.As(err, &apiErr) && len(apiErr.Details) > 0 {
				return fmt.Errorf("%w\n%s", err, apiErr.Details)
			}
			return err
		}
		fmt.Println(string(res.Raw()))
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <folder> <file>...",
	Short: "Upload local files into a NAS folder",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cl, done, err := session(ctx)
		if err != nil {
			return err
		}
		defer done()

		for _, fn := range args[1:] {
			fmt.Fprintf(os.Stderr, "Uploading file %s\n", fn)
			if err := uploadFile(ctx, cl, args[0], fn); err != nil {
				return fmt.Errorf("failed to upload %s: %w", fn, err)
			}
		}
		return nil
	},
}

func uploadFile(ctx context.Context, cl *filestation.Client, folder, fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = cl.UploadReader(ctx, folder, filepath.Base(fn), f, overwrite)
	return err
}

var downloadCmd = &cobra.Command{
	Use:   "download <path>",
	Short: "Download a file from the NAS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cl, done, err := session(ctx)
		if err != nil {
			return err
		}
		defer done()

		dl, err := cl.Download(ctx, args[0])
		if err != nil {
			return err
		}
		out := output
		if out == "" {
			out = filepath.Base(args[0])
		}
		if err := os.WriteFile(out, dl.Data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %s (%s, %d bytes)\n", out, dl.ContentType, len(dl.Data))
		return nil
	},
}
