package constant

// ProjectName is used for window titles, config dirs and env prefixes.
const ProjectName = "gwidgets"

// EnvPrefix is the prefix viper uses for environment overrides.
const EnvPrefix = "GWIDGETS"
