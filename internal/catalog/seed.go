package catalog

import (
	"time"

	"github.com/google/uuid"
)

// MockListing returns the seeded fallback catalog served when the document
// store is unreachable. Prices are in rials.
func MockListing() []Product {
	base := time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)
	mk := func(n int, name string, price int64, desc, hint string) Product {
		return Product{
			ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte("mock-product-"+name)),
			Name:        name,
			Price:       price,
			Description: desc,
			ImageURL:    "https://placehold.co/600x400.png",
			ImageHint:   hint,
			CreatedAt:   base.Add(time.Duration(n) * time.Hour),
			UpdatedAt:   base.Add(time.Duration(n) * time.Hour),
		}
	}
	return []Product{
		mk(1, "شال نخی گلدار", 4_200_000, "شال نخی سبک با طرح گل، مناسب بهار و تابستان", "floral scarf"),
		mk(2, "مانتو کتان کرم", 12_500_000, "مانتو کتان جلوباز با دوخت تمیز و رنگ ثابت", "linen coat"),
		mk(3, "کیف دوشی چرم", 18_900_000, "کیف دوشی چرم طبیعی با بند قابل تنظیم", "leather bag"),
		mk(4, "پیراهن حریر مجلسی", 22_000_000, "پیراهن حریر با آستر نخی و آستین سه‌ربع", "silk dress"),
		mk(5, "شلوار پارچه‌ای مشکی", 8_700_000, "شلوار راسته با کمر کش مخفی", "black trousers"),
		mk(6, "روسری ابریشم قواره بزرگ", 9_600_000, "روسری ابریشم اصل با دور دوخت دست", "silk headscarf"),
	}
}
