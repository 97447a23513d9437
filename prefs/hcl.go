// This file is part of emucore.
//
// emucore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emucore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emucore.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/logger"
)

// Error patterns for HCL files.
const (
	HCLParse = "prefs: hcl: %v"
	HCLValue = "prefs: hcl: %s: %v"
	HCLType  = "prefs: hcl: %s: unsupported type (%s)"
)

// LoadHCL sets preferences in the collection from the HCL file. A missing
// file is not an error. Preferences that were set from the command line are
// not changed.
func (c *Collection) LoadHCL(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf(HCLParse, err)
	}
	return c.ParseHCL(src, filename)
}

// ParseHCL sets preferences in the collection from HCL source. The filename
// is used in error messages only.
//
// Unknown keys are logged and otherwise ignored.
func (c *Collection) ParseHCL(src []byte, filename string) error {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return curated.Errorf(HCLParse, diags)
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return curated.Errorf(HCLParse, "not native syntax")
	}

	return c.walkHCL("", body)
}

func (c *Collection) walkHCL(prefix string, body *hclsyntax.Body) error {
	for name, attr := range body.Attributes {
		key := prefix + name

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return curated.Errorf(HCLValue, key, diags)
		}

		v, err := fromCty(key, val)
		if err != nil {
			return err
		}

		if _, ok := c.Lookup(key); !ok {
			logger.Logf(logger.Allow, "prefs", "%s: ignoring unknown key %s", attr.SrcRange.Filename, key)
			continue
		}

		if c.fromCommandLine(key) {
			continue
		}

		if err := c.Set(key, v); err != nil {
			return err
		}
	}

	for _, blk := range body.Blocks {
		if err := c.walkHCL(prefix+blk.Type+".", blk.Body); err != nil {
			return err
		}
	}

	return nil
}

// convert cty value to a value suitable for the Set() function of the
// preference types
func fromCty(key string, val cty.Value) (Value, error) {
	if val.IsNull() || !val.IsKnown() {
		return nil, curated.Errorf(HCLValue, key, "no value")
	}

	switch val.Type() {
	case cty.Bool:
		return val.True(), nil
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		if bf := val.AsBigFloat(); bf.IsInt() {
			var i int64
			if err := gocty.FromCtyValue(val, &i); err != nil {
				return nil, curated.Errorf(HCLValue, key, err)
			}
			return int(i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, curated.Errorf(HCLValue, key, err)
		}
		return f, nil
	}

	return nil, curated.Errorf(HCLType, key, val.Type().FriendlyName())
}
