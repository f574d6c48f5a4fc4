/*
Copyright © 2026 the Regrid authors.
This file is part of Regrid.

Regrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Regrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Regrid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package regridutil holds the command-line interface for the regrid tool.
package regridutil

import (
	"fmt"
	"math"
	"os"

	"github.com/gonum/floats"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/regrid"
	"github.com/spatialmodel/regrid/catalog"
	"github.com/spatialmodel/regrid/gridio"
	"github.com/spatialmodel/regrid/interpolate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "File",
			usage: `
              File is the path to the gridded data file to read. It can
              include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.Flags(), convertCmd.Flags()},
		},
		{
			name: "Variable",
			usage: `
              Variable is the name of the data variable to read from the
              input file. If empty, the file's first variable is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.Flags(), convertCmd.Flags()},
		},
		{
			name: "Domain",
			usage: `
              Domain is the data-source domain name of the grid the input
              file is defined on, for example "GfsDomain".`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.Flags(), gridsCmd.Flags()},
		},
		{
			name: "Grid",
			usage: `
              Grid is the name of the grid within the domain, for example
              "gfs025".`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryCmd.Flags()},
		},
		{
			name: "Lat",
			usage: `
              Lat is the latitude to query, in degrees.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{queryCmd.Flags()},
		},
		{
			name: "Lon",
			usage: `
              Lon is the longitude to query, in degrees.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{queryCmd.Flags()},
		},
		{
			name: "GridType",
			usage: `
              GridType is the reduced Gaussian grid kind the input data is
              defined on: o320, o1280, n160, or n320.`,
			defaultVal: "o320",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "DLat",
			usage: `
              DLat is the latitude resolution of the target regular grid,
              in degrees.`,
			defaultVal: 0.25,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "DLon",
			usage: `
              DLon is the longitude resolution of the target regular grid,
              in degrees.`,
			defaultVal: 0.25,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "LatRange",
			usage: `
              LatRange bounds the target grid latitude as "min,max".
              If empty, the Gaussian grid's natural coverage is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "LonRange",
			usage: `
              LonRange bounds the target grid longitude as "min,max".
              If empty, the full -180,180 span is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Method",
			usage: `
              Method is the interpolation method: nearest, linear, or cubic.`,
			defaultVal: "linear",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "FillValue",
			usage: `
              FillValue is assigned to target cells that interpolation
              cannot determine. The default is not-a-number.`,
			defaultVal: math.NaN(),
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the desired NetCDF output location.
              It can include environment variables.`,
			defaultVal: "regrid_output.nc",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("REGRID")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(gridsCmd)
	Root.AddCommand(queryCmd)
	Root.AddCommand(convertCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("regrid: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "regrid",
	Short: "Index and resample gridded meteorological data.",
	Long: `regrid indexes points on regular, projected, and reduced Gaussian grids
and converts data from reduced Gaussian grids to regular latitude/longitude
grids.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'REGRID_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of regrid.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("regrid v%s\n", regrid.Version)
	},
	DisableAutoGenTag: true,
}

// gridsCmd lists the grid definitions in the catalog.
var gridsCmd = &cobra.Command{
	Use:   "grids",
	Short: "List the known grid definitions",
	Long: `grids lists the grid definitions in the built-in catalog, optionally
restricted to a single domain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		domains := []string{Cfg.GetString("Domain")}
		if domains[0] == "" {
			var err error
			domains, err = catalog.Domains()
			if err != nil {
				return err
			}
		}
		for _, domain := range domains {
			grids, err := catalog.Grids(domain)
			if err != nil {
				return err
			}
			for _, name := range grids {
				spec, err := catalog.Lookup(domain, name)
				if err != nil {
					return err
				}
				cmd.Printf("%s\t%s\t%s\n", domain, name, describeGrid(spec))
			}
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// queryCmd reads a single value from a gridded data file.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Read the value nearest a coordinate from a data file",
	Long: `query opens a gridded data file, resolves the grid point nearest the
given latitude and longitude, and prints the value stored there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := catalog.Lookup(Cfg.GetString("Domain"), Cfg.GetString("Grid"))
		if err != nil {
			return err
		}
		f, err := openInput(Cfg.GetString("File"))
		if err != nil {
			return err
		}
		defer f.Close()
		data, err := gridio.Open(f)
		if err != nil {
			return err
		}
		variable, err := pickVariable(data, Cfg.GetString("Variable"))
		if err != nil {
			return err
		}

		lat := Cfg.GetFloat64("Lat")
		lon := Cfg.GetFloat64("Lon")
		var value float64
		switch spec.Type {
		case regrid.GridTypeRegular:
			value, err = gridio.QueryRegular(data, *spec.Regular, variable, lat, lon)
		case regrid.GridTypeGaussian:
			value, err = gridio.QueryGaussian(data, *spec.Gaussian, variable, lat, lon)
		case regrid.GridTypeProjection:
			err = &regrid.MissingCapabilityError{
				Capability: fmt.Sprintf("projection evaluator for %s", spec.Projection.Projection.Type),
			}
		}
		if err != nil {
			return err
		}
		if math.IsNaN(value) {
			cmd.Printf("%s at (lat=%g, lon=%g): NaN\n", variable, lat, lon)
		} else {
			cmd.Printf("%s at (lat=%g, lon=%g): %g\n", variable, lat, lon, value)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// convertCmd resamples reduced Gaussian data onto a regular grid.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert reduced Gaussian data to a regular grid",
	Long: `convert reads a data array defined on a reduced Gaussian grid, resamples
it onto a regular latitude/longitude grid, and writes the result as a NetCDF
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := regrid.ParseGaussianGridKind(Cfg.GetString("GridType"))
		if err != nil {
			return err
		}
		opts, err := convertOptions()
		if err != nil {
			return err
		}

		f, err := openInput(Cfg.GetString("File"))
		if err != nil {
			return err
		}
		defer f.Close()
		data, err := gridio.Open(f)
		if err != nil {
			return err
		}
		variable, err := pickVariable(data, Cfg.GetString("Variable"))
		if err != nil {
			return err
		}
		vals, err := data.Read(variable)
		if err != nil {
			return err
		}

		conv := regrid.NewConverter(kind, &interpolate.Scattered{})
		result, err := conv.ToRegularGrid(vals, opts)
		if err != nil {
			return err
		}

		out, err := os.Create(os.ExpandEnv(Cfg.GetString("OutputFile")))
		if err != nil {
			return err
		}
		defer out.Close()
		if err := gridio.WriteRegular(out, result, variable, ""); err != nil {
			return err
		}

		cmd.Printf("wrote %s: %d×%d grid, min %g, max %g\n",
			Cfg.GetString("OutputFile"),
			result.Data.Shape[0], result.Data.Shape[1],
			floats.Min(result.Data.Elements), floats.Max(result.Data.Elements))
		return nil
	},
	DisableAutoGenTag: true,
}

// convertOptions assembles conversion options from the configuration.
func convertOptions() (regrid.Options, error) {
	opts := regrid.DefaultOptions(Cfg.GetFloat64("DLat"), Cfg.GetFloat64("DLon"))
	opts.FillValue = Cfg.GetFloat64("FillValue")

	method, err := interpolate.ParseMethod(Cfg.GetString("Method"))
	if err != nil {
		return regrid.Options{}, err
	}
	opts.Method = method

	if opts.LatRange, err = parseRange(Cfg.GetString("LatRange")); err != nil {
		return regrid.Options{}, fmt.Errorf("regrid: parsing LatRange: %v", err)
	}
	if opts.LonRange, err = parseRange(Cfg.GetString("LonRange")); err != nil {
		return regrid.Options{}, fmt.Errorf("regrid: parsing LonRange: %v", err)
	}
	return opts, nil
}

// describeGrid summarizes a grid specification for listing.
func describeGrid(spec regrid.GridSpec) string {
	switch spec.Type {
	case regrid.GridTypeRegular:
		g := spec.Regular
		return fmt.Sprintf("RegularGrid %d×%d from (%g, %g) step (%g, %g)",
			g.Nx, g.Ny, g.LatMin, g.LonMin, g.Dy, g.Dx)
	case regrid.GridTypeProjection:
		g := spec.Projection
		return fmt.Sprintf("ProjectionGrid %d×%d %s", g.Nx, g.Ny, g.Projection.Type)
	case regrid.GridTypeGaussian:
		k := *spec.Gaussian
		return fmt.Sprintf("GaussianGrid %s (%d points)", string(k), k.TotalPoints())
	}
	return string(spec.Type)
}
