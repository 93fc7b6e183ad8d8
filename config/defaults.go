package config

import "github.com/spf13/viper"

// Defaults holds the answers used when a flag is not given.
type Defaults struct {
	Language       string
	PackageManager string
	Install        bool
	Git            bool
}

func getDefaults(v *viper.Viper) *Defaults {
	return &Defaults{
		Language:       getStringOrDefault(v, "defaults.language", "ts"),
		PackageManager: v.GetString("defaults.package_manager"),
		Install:        getBoolOrDefault(v, "defaults.install", true),
		Git:            getBoolOrDefault(v, "defaults.git", true),
	}
}

// Docs configures the docs command.
type Docs struct {
	APIs []string
	Addr string
	Path string
}

func getDocs(v *viper.Viper) *Docs {
	return &Docs{
		APIs: v.GetStringSlice("docs.apis"),
		Addr: getStringOrDefault(v, "docs.addr", ":8080"),
		Path: getStringOrDefault(v, "docs.path", "/api-docs"),
	}
}
