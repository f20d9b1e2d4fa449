package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/biiclasses/bii/constant"
	"github.com/biiclasses/bii/filesystem"
	"github.com/biiclasses/bii/key"
	"github.com/biiclasses/bii/where"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Log Setup", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsJson, false)
			enabled = false
		})

		Convey("Should stay silent when writing is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
			So(WithFields(logrus.Fields{"a": 1}).Logger, ShouldEqual, discard)
		})

		Convey("Should create today's log file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			Info("hello")

			name := constant.App + "-" + time.Now().Format("2006-01-02") + ".log"
			exists, err := filesystem.API().Exists(filepath.Join(where.Logs(), name))
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Should honour the json format and fall back to info on bad levels", func() {
			var buf bytes.Buffer
			enabled = true
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "loud")
			So(configure(&buf), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)

			WithFields(logrus.Fields{"section": "A"}).Info("ran")
			So(buf.String(), ShouldContainSubstring, `"section":"A"`)
		})
	})
}
