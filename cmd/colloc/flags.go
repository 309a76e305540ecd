package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each flag name to its viper key. Unknown flags are a
// programming error and panic at startup.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			panic("colloc: no flag " + flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
}
