package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile names a transaction-store connection: the platform it runs on
// and the path of the platform-specific config file.
type Profile struct {
	Name       string
	Platform   string
	ConfigPath string
}

// Registry reads named connection profiles from an ini file. Each
// section is one profile:
//
//	[prod]
//	platform = snowflake
//	config = /etc/sales-insights/snowflake.yaml
type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, Profile{
			Name:       section.Name(),
			Platform:   section.Key("platform").String(),
			ConfigPath: section.Key("config").String(),
		})
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	if !cr.cfg.HasSection(name) {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	section := cr.cfg.Section(name)

	p := Profile{
		Name:       name,
		Platform:   section.Key("platform").String(),
		ConfigPath: section.Key("config").String(),
	}
	if p.Platform == "" {
		return nil, fmt.Errorf("profile %s has no platform", name)
	}
	return &p, nil
}
