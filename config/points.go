package config

import "EcoBin/pkg/points"

// Points 积分费率配置，缺省时使用默认费率
type Points struct {
	DryRate float64 `json:"dry_rate" yaml:"dry_rate"`
	WetRate float64 `json:"wet_rate" yaml:"wet_rate"`
}

func (c *Config) Policy() points.Policy {
	p := points.DefaultPolicy()
	if c.Points == nil {
		return p
	}
	if c.Points.DryRate > 0 {
		p.DryRate = c.Points.DryRate
	}
	if c.Points.WetRate > 0 {
		p.WetRate = c.Points.WetRate
	}
	return p
}
