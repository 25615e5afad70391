package entities

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var statusCatalog = newStatusCatalog()

func newStatusCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.SimplifiedChinese))
	zh := map[OrderStatus]string{
		OrderStatusAll:       "全部订单",
		OrderStatusPending:   "待支付",
		OrderStatusPaid:      "已支付",
		OrderStatusCompleted: "已完成",
		OrderStatusCancelled: "已取消",
	}
	en := map[OrderStatus]string{
		OrderStatusAll:       "All orders",
		OrderStatusPending:   "Pending payment",
		OrderStatusPaid:      "Paid",
		OrderStatusCompleted: "Completed",
		OrderStatusCancelled: "Cancelled",
	}
	for status, text := range zh {
		_ = b.SetString(language.SimplifiedChinese, statusKey(status), text)
	}
	for status, text := range en {
		_ = b.SetString(language.English, statusKey(status), text)
	}
	return b
}

func statusKey(s OrderStatus) string {
	return "order.status." + string(s)
}

// StatusText returns the display label of a status for the given language tag.
// Unknown statuses are returned unchanged.
func StatusText(s OrderStatus, lang language.Tag) string {
	if !s.IsValid() {
		return string(s)
	}
	p := message.NewPrinter(lang, message.Catalog(statusCatalog))
	return p.Sprintf(message.Key(statusKey(s), string(s)))
}
