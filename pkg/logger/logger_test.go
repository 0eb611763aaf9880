package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/medahead/conftarget/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When fetching the global instance", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)

			Convey("Then logging at every level does not panic", func() {
				ctx := context.Background()
				So(func() {
					l.Debug(ctx, "debug message", logger.String("k", "v"))
					l.Info(ctx, "info message", logger.Int("n", 1))
					l.Warn(ctx, "warn message", logger.Any("v", []string{"a"}))
					l.Error(ctx, "error message", logger.Error(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			l := logger.Named("seeder")
			So(l, ShouldNotBeNil)
			So(func() { l.Info(context.Background(), "named message") }, ShouldNotPanic)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the level parser", t, func() {
		Convey("Known levels parse", func() {
			for _, lvl := range []string{"debug", "info", "", "warn", "warning", "error", "DEBUG", " Info "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Unknown levels are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})

		Reset(func() {
			_ = logger.SetLevelString("info")
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(logger.String("key", "val"), ShouldResemble, logger.Field{Key: "key", Value: "val"})
		So(logger.Int("count", 3), ShouldResemble, logger.Field{Key: "count", Value: 3})

		err := errors.New("boom")
		So(logger.Error(err).Key, ShouldEqual, "error")
		So(logger.Error(err).Value, ShouldEqual, err)
	})
}
