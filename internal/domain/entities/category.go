package entities

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// Categories is the fixed label set events are filed under.
var Categories = []string{
	"Tech",
	"Business",
	"Career & Networking",
	"Education & Learning",
	"Language & Culture",
	"Music",
	"Movies & Film",
	"Arts",
	"Book Clubs",
	"Dance",
	"Fitness",
	"Health & Wellness",
	"Sports & Recreation",
	"Outdoors & Adventure",
	"Games",
	"Hobbies & Crafts",
	"Photography",
	"Food & Drink",
	"Social",
	"LGBTQ+",
	"Parents & Family",
	"Pets",
	"Religion & Beliefs",
	"Sci-Fi & Fantasy",
	"Writing",
	"Fashion & Beauty",
	"Startups & Entrepreneurship",
	"Support & Community",
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
