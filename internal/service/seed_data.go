package service

import "grocerly/internal/validate"

// sampleItems is the starter catalog written by the seed endpoint and the
// seed CLI, spread over the default categories.
var sampleItems = []validate.ItemInput{
	{Name: "Basmati Rice (1kg)", Rate: 140.00, ImageURL: "https://images.pexels.com/photos/4110251/pexels-photo-4110251.jpeg", Category: "Rice"},
	{Name: "Sona Masoori Rice (1kg)", Rate: 90.00, ImageURL: "https://images.pexels.com/photos/723198/pexels-photo-723198.jpeg", Category: "Rice"},
	{Name: "Brown Rice (1kg)", Rate: 110.00, ImageURL: "https://images.pexels.com/photos/7421202/pexels-photo-7421202.jpeg", Category: "Rice"},
	{Name: "Toor Dal (1kg)", Rate: 160.00, ImageURL: "https://images.pexels.com/photos/4110472/pexels-photo-4110472.jpeg", Category: "Pulses"},
	{Name: "Moong Dal (1kg)", Rate: 150.00, ImageURL: "https://images.pexels.com/photos/8108063/pexels-photo-8108063.jpeg", Category: "Pulses"},
	{Name: "Chana Dal (1kg)", Rate: 120.00, ImageURL: "https://images.pexels.com/photos/8108099/pexels-photo-8108099.jpeg", Category: "Pulses"},
	{Name: "Kabuli Chana (500g)", Rate: 85.00, ImageURL: "https://images.pexels.com/photos/6316515/pexels-photo-6316515.jpeg", Category: "Pulses"},
	{Name: "Turmeric Powder (200g)", Rate: 55.00, ImageURL: "https://images.pexels.com/photos/4198714/pexels-photo-4198714.jpeg", Category: "Spices"},
	{Name: "Red Chilli Powder (200g)", Rate: 70.00, ImageURL: "https://images.pexels.com/photos/4198843/pexels-photo-4198843.jpeg", Category: "Spices"},
	{Name: "Cumin Seeds (100g)", Rate: 45.00, ImageURL: "https://images.pexels.com/photos/4198935/pexels-photo-4198935.jpeg", Category: "Spices"},
	{Name: "Garam Masala (100g)", Rate: 60.00, ImageURL: "https://images.pexels.com/photos/2802527/pexels-photo-2802527.jpeg", Category: "Spices"},
	{Name: "Dishwash Liquid (500ml)", Rate: 99.00, ImageURL: "https://images.pexels.com/photos/4239013/pexels-photo-4239013.jpeg", Category: "Household"},
	{Name: "Detergent Powder (1kg)", Rate: 130.00, ImageURL: "https://images.pexels.com/photos/5217954/pexels-photo-5217954.jpeg", Category: "Household"},
	{Name: "Floor Cleaner (1L)", Rate: 115.00, ImageURL: "https://images.pexels.com/photos/4239146/pexels-photo-4239146.jpeg", Category: "Household"},
}
