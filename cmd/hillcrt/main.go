// main.go sets up the command-line interface for hillcrt using the Cobra
// library: the root command, its flags (bound to viper so HILLCRT_* env
// variables work too), and interactive stdin prompts for whichever of the
// key and ciphertext was not supplied. All cipher work happens in the hill
// package; this binary only moves strings in and out.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillcrt/hill"
)

var version = "dev" // this will be set by the linker

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// main is the entry point of the application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// newRootCmd creates and configures the root cobra command. Kept as a
// constructor (rather than a package-level singleton) so tests can build
// fresh, isolated instances.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hillcrt",
		Short: "hillcrt decrypts 3×3 Hill cipher messages via CRT.",
		Long: `hillcrt decrypts messages encoded with a 3×3 Hill cipher.

The key matrix is inverted modulo 26 by working modulo 2 and modulo 13
separately and recombining the partial inverses with the Chinese Remainder
Theorem. The key is 9 letters, row-major; ciphertext may contain any text,
only letters are significant.

Running without --key or --text prompts for the missing value on stdin.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDecrypt(cmd.InOrStdin(), cmd.OutOrStdout(),
				viper.GetString("key"), viper.GetString("text"), viper.GetString("pad"))
		},
	}

	// Define flags.
	cmd.Flags().StringP("key", "k", "", "9-letter key, row-major (prompted for when omitted)")
	cmd.Flags().StringP("text", "t", "", "ciphertext to decrypt (prompted for when omitted)")
	cmd.Flags().String("pad", "X", "padding letter for a short trailing block (A-Z)")

	// Bind flags to viper, so HILLCRT_KEY / HILLCRT_TEXT / HILLCRT_PAD work.
	_ = viper.BindPFlag("key", cmd.Flags().Lookup("key"))
	_ = viper.BindPFlag("text", cmd.Flags().Lookup("text"))
	_ = viper.BindPFlag("pad", cmd.Flags().Lookup("pad"))
	viper.SetEnvPrefix("HILLCRT")
	viper.AutomaticEnv()

	return cmd
}

// runDecrypt is the whole CLI flow: prompt for missing inputs, validate the
// padding flag, run the decryption pipeline, print the single result line.
// It is separated from cobra wiring so tests can drive it with plain
// readers and writers.
func runDecrypt(in io.Reader, out io.Writer, key, text, pad string) error {
	reader := bufio.NewReader(in)

	var err error
	if key == "" {
		if key, err = promptLine(reader, out, "Enter 9-letter key (row-major, A-Z): "); err != nil {
			return fmt.Errorf("no key input provided")
		}
	}
	if text == "" {
		if text, err = promptLine(reader, out, "Enter ciphertext (any text; non-letters ignored): "); err != nil {
			return fmt.Errorf("no ciphertext input provided")
		}
	}

	// The pad flag is user input, so it is validated here; hill.WithPadding
	// treats a bad letter as a programmer error and panics.
	padUpper := strings.ToUpper(strings.TrimSpace(pad))
	if len(padUpper) != 1 || padUpper[0] < 'A' || padUpper[0] > 'Z' {
		return fmt.Errorf("padding letter must be a single A-Z character, got %q", pad)
	}

	plain, err := hill.DecryptWithKey(key, text, hill.WithPadding(padUpper[0]))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", resultStyle.Render("Decrypted plaintext (uppercase):"), plain)

	return nil
}

// promptLine prints the label and reads one line from the reader. A line
// terminated by EOF instead of '\n' is still accepted; EOF before any input
// is returned as an error for the caller to translate.
func promptLine(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, promptStyle.Render(label))

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
