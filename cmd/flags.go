package cmd

import (
	"github.com/spf13/pflag"
)

// bindFlag lets a flag override the matching configuration key.
func bindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		panic("unknown flag for " + key)
	}
	err := settings.BindPFlag(key, flag)
	if err != nil {
		panic(err)
	}
}
