package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Input  Input
	Sort   Sort
	Filter Filter
	Logger Logger
}

func (c *Config) SetDefaults() {
	c.Input.setDefaults()
	c.Sort.setDefaults()
	c.Filter.setDefaults()
	c.Logger.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"input":  &c.Input,
		"sort":   &c.Sort,
		"filter": &c.Filter,
		"logger": &c.Logger,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Input.toLinesNode())
	node.AppendNode(c.Sort.toLinesNode())
	node.AppendNode(c.Filter.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Input.read(reader)
	if err != nil {
		return fmt.Errorf("reading input settings: %w", err)
	}

	err = c.Sort.read(reader)
	if err != nil {
		return fmt.Errorf("reading sort settings: %w", err)
	}

	err = c.Filter.read(reader)
	if err != nil {
		return fmt.Errorf("reading filter settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
