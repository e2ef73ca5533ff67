package main

import (
	"fmt"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/zeromicro/go-zero/core/conf"
)

type Placement struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Script is a painting described in a yaml, json or toml file.
type Script struct {
	Name       string      `json:"name,optional"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Placements []Placement `json:"placements,optional"`
}

type Failure struct {
	Step int
	Placement
	Err error
}

type Result struct {
	Script
	Surface  *painting.Surface
	Failures []Failure
}

func LoadScript(path string) (s Script, err error) {
	err = conf.Load(path, &s)
	if err == nil && s.Name == "" {
		s.Name = path
	}
	return
}

func LoadScriptFromYaml(content []byte) (s Script, err error) {
	err = conf.LoadFromYamlBytes(content, &s)
	return
}

// Run paints every placement in order. A placement that cannot be painted is
// recorded as a failure and the script carries on with the next one.
func (s Script) Run() (*Result, error) {
	surface, err := painting.NewSurface(s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	r := &Result{Script: s, Surface: surface}
	for step, p := range s.Placements {
		kind, err := painting.ParseKind(p.Kind)
		if err == nil {
			_, err = surface.Select(kind).At(p.X, p.Y)
		}

		if err != nil {
			r.Failures = append(r.Failures, Failure{Step: step, Placement: p, Err: err})
		}
	}

	return r, nil
}
