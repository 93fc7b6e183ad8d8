// Package config loads the create-charcole configuration with Viper.
//
// The file is optional. It is looked up as $HOME/.charcole/config.yaml, then
// ./config.yaml, unless --config names one explicitly:
//
//	defaults:
//	  language: ts          # ts | js
//	  package_manager: pnpm # npm | pnpm | yarn | bun, empty = detect
//	  install: true
//	  git: true
//	docs:
//	  apis: ["src/**/*.ts"]
//	  addr: ":8080"
//	  path: /api-docs
//	logger:
//	  level: info           # trace debug info warn error
//	  format: text          # text | json
//	  output: stderr        # stdout | stderr | file
//	  output_file: ""
//
// Every key can be overridden from the environment with the CHARCOLE_ prefix,
// dots replaced by underscores (CHARCOLE_DEFAULTS_LANGUAGE=js).
package config
