// Package chest loads and validates EnderChest installation descriptors.
//
// An EnderChest installation keeps its configuration in an INI file at
// <minecraft root>/EnderChest/enderchest.cfg. This package only reads enough
// of it to confirm the installation is real and intact; the linking engine
// itself belongs to EnderChest proper.
package chest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	folderName = "EnderChest"
	configName = "enderchest.cfg"
)

// Chest is a validated EnderChest installation descriptor.
type Chest struct {
	// Name is the display name of the chest.
	Name string
	// Address is the sync address (rsync URI) of the chest, if any.
	Address string
	// Instances is the number of instance sections declared in the config.
	Instances int
}

// ConfigPath returns the expected location of the EnderChest config file
// under the given minecraft root.
func ConfigPath(minecraftRoot string) string {
	return filepath.Join(minecraftRoot, folderName, configName)
}

// FromCfg parses and validates the EnderChest config file at path.
// The returned error wraps fs.ErrNotExist when the file is missing.
func FromCfg(path string) (*Chest, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading chest config: %w", err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading chest config %s: %w", path, err)
	}

	props, err := f.GetSection("properties")
	if err != nil {
		return nil, fmt.Errorf("chest config %s: missing [properties] section", path)
	}

	name := props.Key("name").String()
	if name == "" {
		return nil, fmt.Errorf("chest config %s: chest has no name", path)
	}

	// Every section other than DEFAULT and [properties] declares an instance.
	instances := 0
	for _, s := range f.SectionStrings() {
		if s != ini.DefaultSection && s != "properties" {
			instances++
		}
	}

	return &Chest{
		Name:      name,
		Address:   props.Key("address").String(),
		Instances: instances,
	}, nil
}
