package service

import (
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeRetail(t *testing.T) {
	cases := []struct {
		product  string
		expected string
	}{
		{"Graco Booster Seat for Toddlers", "Baby & Kids"},
		{"Premium Dog Food 20kg", "Pet Supplies"},
		{"Apple iPhone 15 Pro", "Mobile Devices"},
		{"Canon EF 50mm Lens", "Photography"},
		{"PlayStation 5 Console", "Gaming"},
		{"Folding Treadmill with Incline", "Fitness Equipment"},
		{"Gas Lawn Mower 21 inch", "Tools & Garden"},
		{"Organic Pancake Mix", "Food & Groceries"},
		{"USB-C Charger 65W", "Electronics"},
		{"Nespresso Coffee Maker", "Home & Kitchen"},
		{"Men's Rain Jacket", "Clothing"},
		{"Sonicare Electric Toothbrush", "Beauty & Personal Care"},
		{"Two Person Camping Tent", "Sports & Outdoors"},
		{"LEGO Star Wars Set", "Toys & Games"},
		{"Vitamin D3 Supplement", "Health & Wellness"},
		{"Decorative Paperweight", "Other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, CategorizeRetail(tc.product), "product %q", tc.product)
	}
}

func TestCategorizeRetailPriorityOrder(t *testing.T) {
	// "baby monitor" contains both a Baby & Kids keyword and an Electronics
	// keyword; the narrower category wins because it is checked first.
	assert.Equal(t, "Baby & Kids", CategorizeRetail("Baby Monitor with Camera"))
	// "dog food" must not fall into Food & Groceries.
	assert.Equal(t, "Pet Supplies", CategorizeRetail("Grain-Free Dog Food"))
}

func TestCategorizeRetailEmptyName(t *testing.T) {
	assert.Equal(t, UnknownLabel, CategorizeRetail(""))
	assert.Equal(t, UnknownLabel, CategorizeRetail("   "))
}

func TestCategorizeDigital(t *testing.T) {
	cases := []struct {
		name     string
		product  string
		subInfo  string
		expected string
	}{
		{"prime subscription", "Amazon Prime Membership", "Monthly subscription plan", CategoryPrimeMembership},
		{"paramount subscription", "Paramount+ Monthly", "Streaming subscription", CategoryParamountPlus},
		{"stack tv", "STACKTV Channel Bundle", "Video subscription", CategoryStackTV},
		{"generic video subscription", "Video Streaming Plan", "Subscription renewal", CategoryVideoStreaming},
		{"other subscription", "Audible Plus", "Monthly subscription", CategoryOtherSubscriptions},
		{"movie rental", "The Matrix (HD Movie)", "", CategoryMovies},
		{"kindle book", "Kindle Edition: Dune", "", CategoryBooksEbooks},
		{"music album", "Greatest Hits Album", "", CategoryMusic},
		{"software", "Photo Editing Software", "", CategoryAppsSoftware},
		{"game", "Indie Game Bundle", "", CategoryGames},
		{"fallback", "Gift Card Reload", "", CategoryOtherDigital},
		{"empty", "", "", UnknownLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategorizeDigital(tc.product, tc.subInfo))
		})
	}
}

func TestCategorizeDigitalSubscriptionSentinel(t *testing.T) {
	// "Not Applicable" means no subscription; the item falls through to the
	// content buckets.
	assert.Equal(t, CategoryMovies, CategorizeDigital("Some Movie", model.SubscriptionNone))
}

func TestClassifyFallsBackToUnknown(t *testing.T) {
	c := Classify(model.Order{ProductName: "X"})
	assert.Equal(t, UnknownLabel, c.CategoryLabel)
	assert.Equal(t, UnknownLabel, c.PaymentLabel)

	c = Classify(model.Order{Category: "Movies", PaymentMethod: "Visa"})
	assert.Equal(t, "Movies", c.CategoryLabel)
	assert.Equal(t, "Visa", c.PaymentLabel)
}

func TestHasSubscription(t *testing.T) {
	assert.False(t, HasSubscription(model.Order{}))
	assert.False(t, HasSubscription(model.Order{SubscriptionInfo: model.SubscriptionNone}))
	assert.True(t, HasSubscription(model.Order{SubscriptionInfo: "Monthly subscription"}))
}
