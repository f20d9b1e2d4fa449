package config_test

import (
	"errors"
	"testing"

	"github.com/biiclasses/bii/config"
	"github.com/biiclasses/bii/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Should return registered fields", func() {
			field, err := config.Lookup(key.HarnessSize)
			So(err, ShouldBeNil)
			So(field.Value, ShouldEqual, 10)
		})

		Convey("Should suggest the closest key for a typo", func() {
			_, err := config.Lookup("harness.sise")
			So(errors.Is(err, config.ErrUnknownKey), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "did you mean "+key.HarnessSize)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		size, wrap := config.Default[key.HarnessSize], config.Default[key.LogsWrite]
		sections, level := config.Default[key.HarnessVectorSections], config.Default[key.LogsLevel]

		Convey("Should convert scalars to the field type", func() {
			So(mustParse(size.Parse([]string{"64"})), ShouldEqual, 64)
			So(mustParse(wrap.Parse([]string{"true"})), ShouldEqual, true)
			So(mustParse(level.Parse([]string{"debug"})), ShouldEqual, "debug")
		})

		Convey("Should split list values on commas and arguments", func() {
			So(mustParse(sections.Parse([]string{"A,C", "E"})), ShouldResemble, []string{"A", "C", "E"})
		})

		Convey("Should reject malformed scalars", func() {
			_, err := size.Parse([]string{"ten"})
			So(errors.Is(err, config.ErrInvalidValue), ShouldBeTrue)

			_, err = wrap.Parse([]string{"maybe"})
			So(errors.Is(err, config.ErrInvalidValue), ShouldBeTrue)

			_, err = size.Parse([]string{"1", "2"})
			So(errors.Is(err, config.ErrInvalidValue), ShouldBeTrue)
		})
	})
}

func mustParse(v any, err error) any {
	So(err, ShouldBeNil)
	return v
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		size, sections := config.Default[key.HarnessSize], config.Default[key.HarnessStackSections]
		icons, level := config.Default[key.IconsVariant], config.Default[key.LogsLevel]

		Convey("Should accept good values", func() {
			So(size.Validate(1), ShouldBeNil)
			So(sections.Validate([]string{"a", " g"}), ShouldBeNil)
			So(icons.Validate("emoji"), ShouldBeNil)
			So(level.Validate("trace"), ShouldBeNil)
		})

		Convey("Should reject a size below one", func() {
			So(errors.Is(size.Validate(0), config.ErrInvalidValue), ShouldBeTrue)
		})

		Convey("Should reject empty and unknown section lists", func() {
			err := sections.Validate([]string{" ", ""})
			So(errors.Is(err, config.ErrInvalidValue), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "at least one stack section")

			err = sections.Validate([]string{"A", "H"})
			So(errors.Is(err, config.ErrInvalidValue), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "unknown stack sections H")
		})

		Convey("Should reject unknown icons and levels", func() {
			So(errors.Is(icons.Validate("sparkles"), config.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(level.Validate("loud"), config.ErrInvalidValue), ShouldBeTrue)
		})
	})
}

func TestSetAndReset(t *testing.T) {
	Convey("Given a fresh configuration", t, func() {
		So(config.Setup(), ShouldBeNil)

		Convey("Set should persist valid values", func() {
			v, err := config.Set(key.HarnessVectorSections, []string{"b,d"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"b", "d"})

			So(config.Setup(), ShouldBeNil)
			So(viper.GetStringSlice(key.HarnessVectorSections), ShouldResemble, []string{"b", "d"})

			Convey("And Reset should restore the default", func() {
				So(config.Reset(key.HarnessVectorSections), ShouldBeNil)
				So(config.Setup(), ShouldBeNil)
				So(viper.GetStringSlice(key.HarnessVectorSections), ShouldResemble, config.Default[key.HarnessVectorSections].Value)
			})
		})

		Convey("Set should leave the value alone when validation fails", func() {
			_, err := config.Set(key.HarnessSize, []string{"0"})
			So(errors.Is(err, config.ErrInvalidValue), ShouldBeTrue)
			So(viper.GetInt(key.HarnessSize), ShouldEqual, 10)
		})

		Convey("Reset without keys should restore everything", func() {
			_, err := config.Set(key.HarnessSize, []string{"3"})
			So(err, ShouldBeNil)
			So(config.Reset(), ShouldBeNil)
			So(viper.GetInt(key.HarnessSize), ShouldEqual, 10)
		})

		Convey("Reset should reject unknown keys", func() {
			So(errors.Is(config.Reset("logs.lvl"), config.ErrUnknownKey), ShouldBeTrue)
		})
	})
}
