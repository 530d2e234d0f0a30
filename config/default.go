package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"binpix/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Encode: EncodeConfig{
		Square:     false,
		NoProgress: false,
		Resize: ResizeConfig{
			Enabled: false,
			Width:   300,
			Height:  300,
			Filter:  "lanczos",
		},
	},
}

const defaultConfigTemplateText = `# binpix Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures default encode behavior. Command-line flags
# override everything in this section.
[encode]
  # Suppresses the row progress meter.
  no_progress = {{.Encode.NoProgress}}
  # Forces square output images.
  square = {{.Encode.Square}}

  # Configures the optional post-encode resample stage. Resampled
  # images are NOT losslessly decodable; leave this disabled unless
  # the output is purely visual.
  [encode.resize]
    enabled = {{.Encode.Resize.Enabled}}
    # Resample kernel: lanczos, nearest, bilinear or bicubic.
    filter = "{{.Encode.Resize.Filter}}"
    height = {{.Encode.Resize.Height}}
    width = {{.Encode.Resize.Width}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

// LoadConfig reads the config file from homeDir, falling back to the
// built-in defaults when no config file exists. Running init is
// optional for binpix.
func LoadConfig(homeDir string) (*Config, error) {
	cfg, err := ReadConfigFile(homeDir)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			defaults := DefaultConfig
			return &defaults, nil
		}
		return nil, err
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
