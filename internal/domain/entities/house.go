package entities

// HouseData is the payload of one house listing as served by the home feed.
type HouseData struct {
	HouseID       string         `json:"houseId"`
	HouseName     string         `json:"houseName"`
	Image         HouseImage     `json:"image"`
	Location      string         `json:"location"`
	FinalPrice    float64        `json:"finalPrice"`
	ProductPrice  float64        `json:"productPrice"`
	SummaryText   string         `json:"summaryText"`
	PriceTipBadge *PriceTipBadge `json:"priceTipBadge,omitempty"`
	CommentScore  float64        `json:"commentScore,omitempty"`
	DiscoveryType int            `json:"discoveryContentType,omitempty"`
}

// HouseListing is the wrapper record of the home feed.
// Data is optional: feed entries without a house payload (ads, banners) carry none.
type HouseListing struct {
	CellType int        `json:"cellType,omitempty"`
	Data     *HouseData `json:"data,omitempty"`
}

// HasHouse reports whether the listing carries a well-formed house payload.
func (l HouseListing) HasHouse() bool {
	return l.Data != nil && l.Data.HouseID != ""
}

// ToHouseInfo snapshots the listing fields stored on an order.
func (h HouseData) ToHouseInfo() HouseInfo {
	info := HouseInfo{
		HouseID:      h.HouseID,
		HouseName:    h.HouseName,
		Image:        h.Image,
		Location:     h.Location,
		FinalPrice:   h.FinalPrice,
		ProductPrice: h.ProductPrice,
		SummaryText:  h.SummaryText,
	}
	if h.PriceTipBadge != nil {
		b := *h.PriceTipBadge
		info.PriceTipBadge = &b
	}
	return info
}

// HotSuggest is a search suggestion shown on the home page.
type HotSuggest struct {
	TagText struct {
		Text       string `json:"text"`
		Color      string `json:"color,omitempty"`
		Background struct {
			Color string `json:"color,omitempty"`
		} `json:"background,omitempty"`
	} `json:"tagText"`
}

// Category is a home page category entry.
type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}
