package service

import (
	"strings"

	"backend/internal/model"
)

// UnknownLabel is the grouping fallback for orders whose category or payment
// method is empty. Aggregation keys are never empty strings.
const UnknownLabel = "Unknown"

// Digital category names
const (
	CategoryPrimeMembership    = "Prime Membership"
	CategoryParamountPlus      = "Paramount+"
	CategoryStackTV            = "STACK TV"
	CategoryVideoStreaming     = "Video Streaming"
	CategoryMovies             = "Movies"
	CategoryBooksEbooks        = "Books & eBooks"
	CategoryMusic              = "Music"
	CategoryAppsSoftware       = "Apps & Software"
	CategoryGames              = "Games"
	CategoryOtherSubscriptions = "Other Subscriptions"
	CategoryOtherDigital       = "Other Digital"
)

// CategoryOther is the retail fallback bucket.
const CategoryOther = "Other"

// Classification tags one order for aggregation.
type Classification struct {
	IsDigital     bool
	IsReturn      bool
	CategoryLabel string
	PaymentLabel  string
}

// Classify deterministically tags an order. Labels fall back to UnknownLabel
// so map-based grouping never keys on an empty string.
func Classify(o model.Order) Classification {
	return Classification{
		IsDigital:     o.IsDigital,
		IsReturn:      o.IsReturn,
		CategoryLabel: labelOrUnknown(o.Category),
		PaymentLabel:  labelOrUnknown(o.PaymentMethod),
	}
}

func labelOrUnknown(label string) string {
	if strings.TrimSpace(label) == "" {
		return UnknownLabel
	}
	return label
}

// retailCategory pairs a category name with the product-name keywords that
// select it. Matching is first-hit in slice order, so narrower categories
// (Baby & Kids, Pet Supplies, Photography) are listed before broad ones
// (Electronics, Home & Kitchen) that share keywords with them.
type retailCategory struct {
	name     string
	keywords []string
}

var retailCategories = []retailCategory{
	{"Baby & Kids", []string{"car seat", "booster seat", "booster", "baby", "infant", "toddler", "stroller", "diaper"}},
	{"Pet Supplies", []string{"dog food", "cat food", "pet food", "chicken feed", "layer pellets", "layer pellet",
		"mixed grains scratch", "goat feed", "goat snax", "pet treat", "bully stick",
		"dog chew", "dog treat", "animal feed", "feed for", "dog chews"}},
	{"Mobile Devices", []string{"iphone", "ipad", "smartphone", "tablet", "apple watch", "smartwatch",
		"smart watch", "huawei watch", "samsung phone", "google pixel", "oura ring"}},
	{"Photography", []string{"lens", "canon ef", "canon ef-", "canon ef-m", "sigma", "photography",
		"dslr", "mirrorless", "camcorder", "vixia", "powershot", "eos",
		"viewfinder", "camera lens"}},
	{"Gaming", []string{"playstation", "nintendo", "xbox", "switch", "ps4", "ps5", "wii", "game console",
		"gamepad", "controller", "video game", "gaming"}},
	{"Fitness Equipment", []string{"elliptical", "treadmill", "walking pad", "exercise", "fitness", "gym",
		"weights", "yoga", "workout", "dumbbell"}},
	{"Tools & Garden", []string{"lawn mower", "lawn sweepr", "string trimmer", "chipper", "shredder",
		"fence", "mesh", "generator", "tool", "garden", "yard", "landscaping",
		"arborist", "utility cart", "garden cart"}},
	{"Food & Groceries", []string{"pancake mix", "food", "grocery", "ingredient", "spice", "seasoning"}},
	{"Services", []string{"hire", "service", "arborist"}},
	{"Automotive", []string{"truck", "vehicle", "automotive", "auto tire", "auto oil", "car tire", "car oil"}},
	{"Electronics", []string{"battery", "charger", "headphone", "earbud", "cable", "wireless", "led", "display", "screen",
		"monitor", "keyboard", "mouse", "router", "wifi", "ethernet", "speaker", "amplifier",
		"kindle", "e-reader", "chromebook", "laptop", "computer", "hard drive", "external drive",
		"smart lock", "smart home", "security camera", "nvr", "camera system"}},
	{"Home & Kitchen", []string{"cabinet", "organizer", "storage", "container", "mattress", "bedding",
		"curtain", "drape", "coffee maker", "coffee brewer", "nespresso",
		"moccamaster", "blender", "vitamix", "pasta maker", "smoker",
		"air conditioner", "vacuum", "roomba", "dyson", "air purifier",
		"hepa", "popcorn machine", "aerogarden", "chicken coop door"}},
	{"Clothing", []string{"shirt", "jacket", "hoodie", "pants", "dress", "shoes", "socks", "clothing", "apparel",
		"slipper", "boot", "sunglasses", "glasses", "rain jacket", "raincoat"}},
	{"Beauty & Personal Care", []string{"makeup", "cosmetic", "beauty", "skincare", "shampoo", "soap",
		"hair mask", "hair growth", "toothbrush", "sonicare", "oral-b",
		"laser hair", "jewelry polisher"}},
	{"Sports & Outdoors", []string{"sport", "outdoor", "camping", "hiking", "tent", "backpack", "paddle",
		"sup", "paddleboard", "volleyball", "badminton", "trampoline"}},
	{"Toys & Games", []string{"toy", "game", "lego", "puzzle", "board game", "building kit", "playset"}},
	{"Health & Wellness", []string{"vitamin", "supplement", "health", "wellness", "fitness", "electrolyte",
		"multivitamin", "gummy vitamin", "dna test", "23andme", "protein"}},
}

// CategorizeRetail maps a retail product name to a category label. Used at
// ingest time so aggregation can group on a stored label.
func CategorizeRetail(productName string) string {
	name := strings.ToLower(productName)
	if strings.TrimSpace(name) == "" {
		return UnknownLabel
	}
	for _, cat := range retailCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(name, kw) {
				return cat.name
			}
		}
	}
	return CategoryOther
}

// CategorizeDigital maps a digital item to a category label. Subscription
// items are split into the named streaming services before the generic
// content buckets apply.
func CategorizeDigital(productName, subscriptionInfo string) string {
	name := strings.ToLower(productName)
	sub := strings.ToLower(subscriptionInfo)

	isSubscription := subscriptionInfo != "" && subscriptionInfo != model.SubscriptionNone &&
		strings.Contains(sub, "subscription")
	if isSubscription || strings.Contains(name, "subscription") {
		switch {
		case strings.Contains(name, "prime"):
			return CategoryPrimeMembership
		case strings.Contains(name, "paramount"):
			return CategoryParamountPlus
		case strings.Contains(name, "stacktv") || strings.Contains(name, "stack tv"):
			return CategoryStackTV
		case strings.Contains(name, "video") || strings.Contains(name, "streaming"):
			return CategoryVideoStreaming
		default:
			return CategoryOtherSubscriptions
		}
	}

	switch {
	case strings.Contains(name, "movie") || strings.Contains(name, "film"):
		return CategoryMovies
	case strings.Contains(name, "book") || strings.Contains(name, "kindle"):
		return CategoryBooksEbooks
	case strings.Contains(name, "music") || strings.Contains(name, "song") || strings.Contains(name, "album"):
		return CategoryMusic
	case strings.Contains(name, "app") || strings.Contains(name, "software"):
		return CategoryAppsSoftware
	case strings.Contains(name, "game"):
		return CategoryGames
	case strings.TrimSpace(name) == "":
		return UnknownLabel
	default:
		return CategoryOtherDigital
	}
}

// HasSubscription reports whether the order carries real subscription info,
// i.e. the field is present and not the export's "Not Applicable" sentinel.
func HasSubscription(o model.Order) bool {
	return o.SubscriptionInfo != "" && o.SubscriptionInfo != model.SubscriptionNone
}
