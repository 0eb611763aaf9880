package model_test

import (
	"testing"

	"github.com/medahead/conftarget/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewContact(t *testing.T) {
	Convey("Given contact construction with defaulting", t, func() {
		Convey("When all fields are provided", func() {
			c := model.NewContact("Jane Doe", "jane@acme.com", "Acme", "CTO", "Retail", "BIO 2025")

			So(c.ID, ShouldNotBeEmpty)
			So(c.Industry, ShouldEqual, "Retail")
			So(c.Conference, ShouldEqual, "BIO 2025")
			So(c.Priority, ShouldEqual, model.PriorityMedium)
			So(c.Score, ShouldEqual, 0)
		})

		Convey("When industry and conference are blank", func() {
			c := model.NewContact("Jane Doe", "jane@acme.com", "Acme", "CTO", " ", "")

			Convey("Then the defaults apply", func() {
				So(c.Industry, ShouldEqual, model.DefaultIndustry)
				So(c.Conference, ShouldEqual, model.DefaultConference)
			})
		})

		Convey("When constructing two contacts", func() {
			a := model.NewContact("A", "", "", "", "", "")
			b := model.NewContact("B", "", "", "", "", "")

			Convey("Then each gets a distinct identifier", func() {
				So(a.ID, ShouldNotEqual, b.ID)
			})
		})
	})
}

func TestParsePriority(t *testing.T) {
	Convey("Given raw priority strings", t, func() {
		So(model.ParsePriority("high"), ShouldEqual, model.PriorityHigh)
		So(model.ParsePriority(" HIGH "), ShouldEqual, model.PriorityHigh)
		So(model.ParsePriority("low"), ShouldEqual, model.PriorityLow)
		So(model.ParsePriority("medium"), ShouldEqual, model.PriorityMedium)
		So(model.ParsePriority("whatever"), ShouldEqual, model.PriorityMedium)
		So(model.ParsePriority(""), ShouldEqual, model.PriorityMedium)
	})
}

func TestUserProfile(t *testing.T) {
	Convey("Given a profile", t, func() {
		Convey("When it has no id", func() {
			p := model.UserProfile{Name: "Demo"}
			p.EnsureID()
			So(p.ID, ShouldNotBeEmpty)
		})

		Convey("When it already has an id", func() {
			p := model.UserProfile{ID: "fixed"}
			p.EnsureID()
			So(p.ID, ShouldEqual, "fixed")
		})

		Convey("When reading the primary goal", func() {
			So((&model.UserProfile{Goals: []string{"partnerships", "pilots"}}).PrimaryGoal("networking"), ShouldEqual, "partnerships")
			So((&model.UserProfile{Goals: []string{"", "pilots"}}).PrimaryGoal("networking"), ShouldEqual, "pilots")
			So((&model.UserProfile{}).PrimaryGoal("networking"), ShouldEqual, "networking")
		})
	})
}
