package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Use should install any afero backend", func() {
			Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().WriteFile("x.lua", []byte("print(1)"), 0o644), ShouldNotBeNil)
			SetMemMapFs()
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter over an in-memory backend", t, func() {
		SetMemMapFs()
		fs := GacheFs{}

		Convey("It should create directories and files in the active backend", func() {
			So(fs.MkdirAll("/cache/nested", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("/cache/nested/data.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/cache/nested/data.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})
	})
}
