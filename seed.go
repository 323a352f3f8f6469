package main

import (
	"time"

	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/userdata"
)

const placeholderAvatar = "/placeholder.svg?height=40&width=40"

// seedAuctions populates the store with the demo catalog.
func seedAuctions(store *repository.MemoryStore) {
	now := time.Now().UnixMilli()
	minutesAgo := func(m int) int64 { return now - int64(m)*60*1000 }

	bid := func(id string, amount float64, atMinutesAgo int, bidder, bidType string) model.Bid {
		return model.Bid{
			ID:           id,
			Amount:       amount,
			Timestamp:    minutesAgo(atMinutesAgo),
			Bidder:       bidder,
			BidderAvatar: placeholderAvatar,
			BidType:      bidType,
		}
	}

	auctions := []model.Auction{
		{
			ID:             "auction-1",
			Name:           "Vintage Oil Painting - Mountain Landscape",
			Description:    "Exquisite 19th century landscape painting by renowned French artist Marcel Dubois, featuring Alpine mountain scenery with vibrant autumn colors and masterful brushwork.",
			CurrentBid:     2850,
			TimeRemaining:  3600,
			TotalBids:      6,
			StartingBid:    1200,
			ReservePrice:   2500,
			Category:       "Art",
			Condition:      "Excellent",
			Year:           "1890",
			Seller:         "Heritage Fine Arts",
			SellerRating:   4.9,
			Location:       "New York, NY",
			ShippingInfo:   "Free worldwide shipping, fully insured, professional art handling",
			EstimatedValue: "$3,500 - $4,500",
			Image:          "/placeholder.svg?height=400&width=600",
			ViewCount:      247,
			WatchCount:     34,
			Status:         model.StatusActive,
			BidHistory: []model.Bid{
				bid("bid-1", 1200, 120, "ArtCollector_NYC", "manual"),
				bid("bid-2", 1500, 90, "MuseumCurator_LA", "manual"),
				bid("bid-3", 1800, 60, "EuropeanDealer", "auto"),
				bid("bid-4", 2200, 45, "PrivateCollector_TX", "manual"),
				bid("bid-5", 2500, 30, "GalleryOwner_SF", "auto"),
				bid("bid-6", 2850, 15, "ArtInvestor_Miami", "manual"),
			},
		},
		{
			ID:             "auction-2",
			Name:           "Patek Philippe Pocket Watch - 18K Gold",
			Description:    "Exceptional Swiss pocket watch circa 1895, 18-karat yellow gold hunting case with hand-engraved patterns and white enamel dial, mechanical movement in perfect working condition.",
			CurrentBid:     4200,
			TimeRemaining:  1800,
			TotalBids:      6,
			StartingBid:    2500,
			ReservePrice:   3800,
			Category:       "Watches",
			Condition:      "Very Good",
			Year:           "1895",
			Seller:         "Timepiece Gallery International",
			SellerRating:   4.8,
			Location:       "Geneva, Switzerland",
			ShippingInfo:   "Express shipping available, fully insured, signature required",
			EstimatedValue: "$5,000 - $6,500",
			Image:          "/placeholder.svg?height=400&width=600",
			ViewCount:      189,
			WatchCount:     28,
			Status:         model.StatusActive,
			BidHistory: []model.Bid{
				bid("bid-7", 2500, 90, "WatchEnthusiast_UK", "manual"),
				bid("bid-8", 2800, 75, "TimeCollector_CH", "auto"),
				bid("bid-9", 3200, 60, "VintageDealer_NY", "manual"),
				bid("bid-10", 3600, 45, "HorologyExpert", "auto"),
				bid("bid-11", 3900, 30, "SwissCollector", "manual"),
				bid("bid-12", 4200, 15, "PatekPhilippeFan", "auto"),
			},
		},
		{
			ID:             "auction-3",
			Name:           "First Edition Book Collection - Literary Classics",
			Description:    "Remarkable collection of first edition books featuring works by Dickens, Shakespeare, Twain and Wilde, all in pristine condition with original dust jackets where applicable.",
			CurrentBid:     1850,
			TimeRemaining:  7200,
			TotalBids:      5,
			StartingBid:    1200,
			ReservePrice:   1600,
			Category:       "Books",
			Condition:      "Mint to Near Mint",
			Year:           "1800-1920",
			Seller:         "Antiquarian Books & Manuscripts",
			SellerRating:   4.9,
			Location:       "Boston, MA",
			ShippingInfo:   "Careful packaging, signature required, insurance included",
			EstimatedValue: "$2,200 - $2,800",
			Image:          "/placeholder.svg?height=400&width=600",
			ViewCount:      156,
			WatchCount:     19,
			Status:         model.StatusActive,
			BidHistory: []model.Bid{
				bid("bid-13", 1200, 105, "BookCollector_Boston", "manual"),
				bid("bid-14", 1350, 90, "LibrarySpecialist", "auto"),
				bid("bid-15", 1500, 75, "RareBookDealer_UK", "manual"),
				bid("bid-16", 1650, 60, "UniversityLibrary", "auto"),
				bid("bid-17", 1850, 30, "LiteratureProf_Yale", "manual"),
			},
		},
		{
			ID:             "auction-4",
			Name:           "1965 Fender Stratocaster - Sunburst Finish",
			Description:    "Iconic 1965 Fender Stratocaster in excellent condition with original sunburst finish, all original hardware and a legendary tone. Includes original hard case.",
			CurrentBid:     8500,
			TimeRemaining:  0,
			TotalBids:      7,
			StartingBid:    5000,
			ReservePrice:   7500,
			Category:       "Musical Instruments",
			Condition:      "Excellent",
			Year:           "1965",
			Seller:         "Guitar Heaven Vintage",
			SellerRating:   4.9,
			Location:       "Nashville, TN",
			ShippingInfo:   "Professional instrument shipping, fully insured",
			EstimatedValue: "$8,000 - $10,000",
			Image:          "/placeholder.svg?height=400&width=600",
			ViewCount:      423,
			WatchCount:     67,
			Status:         model.StatusEnded,
			BidHistory: []model.Bid{
				bid("bid-18", 5000, 180, "GuitarCollector_TX", "manual"),
				bid("bid-19", 5500, 165, "VintageGuitarDealer", "auto"),
				bid("bid-20", 6200, 135, "SessionMusician_LA", "manual"),
				bid("bid-21", 6800, 120, "RockGuitarist", "auto"),
				bid("bid-22", 7500, 90, "FenderEnthusiast", "manual"),
				bid("bid-23", 8200, 60, "MusicStore_Nashville", "auto"),
				bid("bid-24", 8500, 30, "StratocasterFan_UK", "manual"),
			},
		},
		{
			ID:             "auction-5",
			Name:           "Art Deco Diamond Ring - Platinum Setting",
			Description:    "Stunning Art Deco engagement ring from the 1920s featuring a 2.5-carat center diamond surrounded by smaller diamonds in an intricate platinum setting.",
			CurrentBid:     12500,
			TimeRemaining:  5400,
			TotalBids:      5,
			StartingBid:    8000,
			ReservePrice:   11000,
			Category:       "Jewelry",
			Condition:      "Excellent",
			Year:           "1925",
			Seller:         "Prestige Estate Jewelry",
			SellerRating:   4.8,
			Location:       "Beverly Hills, CA",
			ShippingInfo:   "Secure shipping, fully insured, signature required",
			EstimatedValue: "$13,000 - $16,000",
			Image:          "/placeholder.svg?height=400&width=600",
			ViewCount:      312,
			WatchCount:     45,
			Status:         model.StatusActive,
			BidHistory: []model.Bid{
				bid("bid-25", 8000, 120, "JewelryCollector_NYC", "manual"),
				bid("bid-26", 9200, 105, "EstateJewelryDealer", "auto"),
				bid("bid-27", 10500, 90, "DiamondExpert_LA", "manual"),
				bid("bid-28", 11800, 60, "VintageRingLover", "auto"),
				bid("bid-29", 12500, 30, "ArtDecoCollector", "manual"),
			},
		},
		{
			ID:             "auction-6",
			Name:           "Ming Dynasty Porcelain Vase - Blue and White",
			Description:    "Exceptional Ming Dynasty porcelain vase from the Wanli period (1572-1620) with traditional blue and white glazing and intricate floral motifs. Museum quality.",
			CurrentBid:     15800,
			TimeRemaining:  10800,
			TotalBids:      4,
			StartingBid:    12000,
			ReservePrice:   14000,
			Category:       "Asian Art",
			Condition:      "Very Good",
			Year:           "1572-1620",
			Seller:         "Oriental Arts & Antiques",
			SellerRating:   4.9,
			Location:       "San Francisco, CA",
			ShippingInfo:   "Museum-quality packing, international shipping available",
			EstimatedValue: "$18,000 - $22,000",
			Image:          "/placeholder.svg?height=400&width=600",
			ViewCount:      278,
			WatchCount:     31,
			Status:         model.StatusActive,
			BidHistory: []model.Bid{
				bid("bid-30", 12000, 150, "AsianArtCollector", "manual"),
				bid("bid-31", 13200, 120, "MuseumCurator_SF", "auto"),
				bid("bid-32", 14500, 90, "ChinesePorcelainExpert", "manual"),
				bid("bid-33", 15800, 60, "InternationalDealer_HK", "auto"),
			},
		},
	}

	for _, a := range auctions {
		store.AddAuction(a)
	}
}

// seedUserData populates the demo user's bid history and watchlist.
func seedUserData(users *userdata.UserStore) {
	now := time.Now().UnixMilli()

	users.Seed([]model.UserBid{
		{
			ID:          "user-bid-1",
			AuctionID:   "auction-1",
			AuctionName: "Vintage Oil Painting - Mountain Landscape",
			Amount:      2800,
			Timestamp:   now - 30*60*1000,
			Status:      "outbid",
			Bidder:      "Current User",
		},
		{
			ID:          "user-bid-2",
			AuctionID:   "auction-2",
			AuctionName: "Patek Philippe Pocket Watch - 18K Gold",
			Amount:      4100,
			Timestamp:   now - 60*60*1000,
			Status:      "outbid",
			Bidder:      "Current User",
		},
	}, []model.WatchlistItem{
		{ID: "watch-1", AuctionID: "auction-3", AddedAt: now - 24*60*60*1000},
		{ID: "watch-2", AuctionID: "auction-5", AddedAt: now - 48*60*60*1000},
	})
}
