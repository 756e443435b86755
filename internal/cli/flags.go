package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagOrConfig returns value when flagName was set on the command line and
// the configured value for key otherwise.
func flagOrConfig[T any](cmd *cobra.Command, value T, key string, flagName string, fromConfig func(string) T) T {
	if flagChanged(cmd, flagName) {
		return value
	}
	return fromConfig(key)
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	return flagOrConfig(cmd, value, key, flagName, viper.GetString)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	return flagOrConfig(cmd, values, key, flagName, viper.GetStringSlice)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	return flagOrConfig(cmd, value, key, flagName, viper.GetBool)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	return flagOrConfig(cmd, value, key, flagName, viper.GetInt)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	flag := cmd.Flag(name)
	return flag != nil && flag.Changed
}

// pathArg returns the single optional PATH argument; none means stdin/stdout.
func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
