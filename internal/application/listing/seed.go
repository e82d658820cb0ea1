package listing

import (
	"fmt"

	"github.com/vrentals-api/internal/domain"
)

const unsplash = "https://images.unsplash.com/photo-%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

var seedListings = []domain.Listing{
	{
		Title:         "Cozy 1BHK Retreat in Chandigarh",
		Description:   "A compact 1BHK apartment in the heart of Chandigarh, perfect for singles or couples.",
		Price:         "₹7,000/month",
		ImageURL:      photo("1600585154340-be6161a56a0c"),
		ContactNumber: "9876543210",
	},
	{
		Title:         "Modern 1BHK Haven in Chandigarh",
		Description:   "Stylish 1BHK in Chandigarh with modern amenities, ideal for professionals.",
		Price:         "₹7,500/month",
		ImageURL:      photo("1522708323590-d24dbb6b0267"),
		ContactNumber: "9876543211",
	},
	{
		Title:         "Spacious 2BHK Home in Chandigarh",
		Description:   "Comfortable 2BHK apartment in Chandigarh, great for small families.",
		Price:         "₹8,500/month",
		ImageURL:      photo("1560448204-e02f11c3d0e2"),
		ContactNumber: "9876543212",
	},
	{
		Title:         "Luxury 2BHK Suite in Chandigarh",
		Description:   "Elegant 2BHK in Chandigarh with premium furnishings and city views.",
		Price:         "₹9,000/month",
		ImageURL:      photo("1570129477492-45c003edd2be"),
		ContactNumber: "9876543213",
	},
	{
		Title:         "Grand 3BHK Villa in Chandigarh",
		Description:   "Spacious 3BHK villa in Chandigarh, perfect for large families.",
		Price:         "₹9,500/month",
		ImageURL:      photo("1512917774080-9991f7c4c60d"),
		ContactNumber: "9876543214",
	},
	{
		Title:         "Premium 3BHK Residence in Chandigarh",
		Description:   "Luxurious 3BHK in Chandigarh with a large balcony and modern facilities.",
		Price:         "₹10,000/month",
		ImageURL:      photo("1568605114967-8130f3a36994"),
		ContactNumber: "9876543215",
	},
}

func photo(id string) string {
	return fmt.Sprintf(unsplash, id)
}
