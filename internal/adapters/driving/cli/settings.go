package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings used to reach the Europeana search API.

Settings are stored in config.toml in the configuration directory.
ARTGRAPH_API_KEY overrides the stored API key without changing it.

Keys:
  europeana.api_key     API key sent as wskey
  europeana.provider    DATA_PROVIDER the search is restricted to
  europeana.base_url    search endpoint
  europeana.rows        records per page (0-100)
  europeana.max_pages   pages fetched per collection
  europeana.rate_limit  requests per second
  europeana.timeout     HTTP timeout (e.g. 30s)`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting. When the value is omitted for the API key it is
read from the terminal without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore the default of one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingView is the serialised form of one setting.
type settingView struct {
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
	Default bool   `json:"default" yaml:"default"`
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	service, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := service.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defaults := service.Defaults()

	views := make([]settingView, 0, len(domain.SettingKeys()))
	for _, key := range domain.SettingKeys() {
		value := settingValue(settings, key)
		isDefault := value == settingValue(defaults, key)
		if domain.IsSecret(key) {
			value = domain.MaskSecret(value)
		}
		views = append(views, settingView{Key: key, Value: value, Default: isDefault})
	}

	return render(cmd.OutOrStdout(), views, func(w io.Writer) error {
		t := newTable("KEY", "VALUE", "")
		for _, v := range views {
			marker := ""
			if v.Default {
				marker = "(default)"
			}
			t.addRow(v.Key, v.Value, marker)
		}
		if err := t.write(w); err != nil {
			return err
		}

		if err := service.Validate(); err != nil {
			fmt.Fprintf(w, "\nWarning: %v\n", err)
		}
		return nil
	})
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	service, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := service.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value, err := settings.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	service, err := requireSettings()
	if err != nil {
		return err
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case domain.IsSecret(key):
		cmd.Print("Enter value: ")
		value = readPassword(cmd.InOrStdin())
		cmd.Println()
	default:
		return errors.New("a value is required")
	}

	if err := service.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if domain.IsSecret(key) {
		value = domain.MaskSecret(value)
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	service, err := requireSettings()
	if err != nil {
		return err
	}

	if err := service.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to reset %s: %w", args[0], err)
	}

	cmd.Printf("%s restored to its default\n", args[0])
	return nil
}

// settingValue returns the string form of a known setting.
func settingValue(settings domain.Settings, key string) string {
	value, _ := settings.Get(key) //nolint:errcheck // keys come from SettingKeys
	return value
}

// readPassword reads a line without echo when in is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
