package catalog

import "github.com/shopspring/decimal"

var seedProducts = []Product{
	{
		ID:            "office-365-personal",
		Name:          "Microsoft Office 365 Personal",
		Category:      "Office Suite",
		Price:         decimal.NewFromInt(4200),
		OriginalPrice: decimal.NewFromInt(5200),
		Description:   "Complete Office suite with Word, Excel, PowerPoint, Outlook, and 1TB OneDrive storage for 1 user.",
		Features:      []string{"1 User License", "1TB OneDrive Storage", "Premium Office Apps", "Mobile & Web Apps", "1 Year Subscription"},
		Image:         "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.8,
		Reviews:       245,
	},
	{
		ID:            "office-365-family",
		Name:          "Microsoft Office 365 Family",
		Category:      "Office Suite",
		Price:         decimal.NewFromInt(5200),
		OriginalPrice: decimal.NewFromInt(6500),
		Description:   "Office 365 for up to 6 users with premium apps, 1TB OneDrive storage per user, and advanced security.",
		Features:      []string{"6 User Licenses", "1TB OneDrive per User", "Premium Office Apps", "Advanced Security", "1 Year Subscription"},
		Image:         "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.9,
		Reviews:       189,
	},
	{
		ID:            "office-2021-home",
		Name:          "Microsoft Office 2021 Home & Student",
		Category:      "Office Suite",
		Price:         decimal.NewFromInt(8900),
		OriginalPrice: decimal.NewFromInt(10500),
		Description:   "One-time purchase of Office 2021 with Word, Excel, PowerPoint for home and student use.",
		Features:      []string{"Lifetime License", "Word, Excel, PowerPoint", "OneNote Included", "Windows & Mac Compatible", "No Subscription Required"},
		Image:         "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.7,
		Reviews:       156,
	},
	{
		ID:            "office-2021-professional",
		Name:          "Microsoft Office 2021 Professional",
		Category:      "Office Suite",
		Price:         decimal.NewFromInt(18500),
		OriginalPrice: decimal.NewFromInt(22000),
		Description:   "Complete Office 2021 suite with all applications including Access and Publisher for professional use.",
		Features:      []string{"Lifetime License", "All Office Apps", "Access & Publisher", "Commercial Use", "Advanced Features"},
		Image:         "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.8,
		Reviews:       98,
	},
	{
		ID:            "windows-11-home",
		Name:          "Windows 11 Home",
		Category:      "Operating System",
		Price:         decimal.NewFromInt(7500),
		OriginalPrice: decimal.NewFromInt(9500),
		Description:   "Latest Windows 11 Home edition with enhanced security, productivity features, and modern design.",
		Features:      []string{"Genuine License Key", "Lifetime Activation", "Latest Security Updates", "Microsoft Support", "Digital Download"},
		Image:         "https://images.unsplash.com/photo-1633419461186-7d40a38105ec?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.6,
		Reviews:       312,
	},
	{
		ID:            "windows-11-pro",
		Name:          "Windows 11 Professional",
		Category:      "Operating System",
		Price:         decimal.NewFromInt(12500),
		OriginalPrice: decimal.NewFromInt(15000),
		Description:   "Windows 11 Pro with advanced business features, BitLocker encryption, and domain join capabilities.",
		Features:      []string{"Business Features", "BitLocker Encryption", "Domain Join", "Remote Desktop", "Hyper-V Support"},
		Image:         "https://images.unsplash.com/photo-1633419461186-7d40a38105ec?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.7,
		Reviews:       198,
	},
	{
		ID:            "windows-10-pro",
		Name:          "Windows 10 Professional",
		Category:      "Operating System",
		Price:         decimal.NewFromInt(8900),
		OriginalPrice: decimal.NewFromInt(11000),
		Description:   "Reliable Windows 10 Pro with proven stability and extensive software compatibility.",
		Features:      []string{"Proven Stability", "Wide Compatibility", "Business Features", "Regular Updates", "Lifetime License"},
		Image:         "https://images.unsplash.com/photo-1633419461186-7d40a38105ec?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.8,
		Reviews:       445,
	},
	{
		ID:            "windows-server-2022",
		Name:          "Windows Server 2022 Standard",
		Category:      "Server License",
		Price:         decimal.NewFromInt(45000),
		OriginalPrice: decimal.NewFromInt(55000),
		Description:   "Latest Windows Server 2022 with enhanced security, hybrid capabilities, and container support.",
		Features:      []string{"16 Core License", "Hybrid Cloud Ready", "Enhanced Security", "Container Support", "Official License"},
		Image:         "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=300&fit=crop",
		InStock:       true,
		Rating:        4.5,
		Reviews:       67,
	},
	{
		ID:            "vps-starter",
		Name:          "VPS Starter Plan",
		Category:      "VPS Hosting",
		Price:         decimal.NewFromInt(1200),
		OriginalPrice: decimal.NewFromInt(1500),
		Description:   "Perfect starter VPS with SSD storage, dedicated resources, and 99.9% uptime guarantee.",
		Features:      []string{"2 CPU Cores", "4GB RAM", "50GB SSD Storage", "1TB Bandwidth", "99.9% Uptime", "Linux/Windows"},
		Image:         "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=300&fit=crop",
		InStock:       true,
		Monthly:       true,
		Rating:        4.4,
		Reviews:       89,
	},
	{
		ID:            "vps-business",
		Name:          "VPS Business Plan",
		Category:      "VPS Hosting",
		Price:         decimal.NewFromInt(2500),
		OriginalPrice: decimal.NewFromInt(3000),
		Description:   "Business-grade VPS with enhanced performance, more resources, and priority support.",
		Features:      []string{"4 CPU Cores", "8GB RAM", "100GB SSD Storage", "2TB Bandwidth", "Priority Support", "Daily Backups"},
		Image:         "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=300&fit=crop",
		InStock:       true,
		Monthly:       true,
		Rating:        4.6,
		Reviews:       134,
	},
	{
		ID:            "vps-enterprise",
		Name:          "VPS Enterprise Plan",
		Category:      "VPS Hosting",
		Price:         decimal.NewFromInt(4500),
		OriginalPrice: decimal.NewFromInt(5500),
		Description:   "High-performance VPS for demanding applications with maximum resources and dedicated support.",
		Features:      []string{"8 CPU Cores", "16GB RAM", "200GB SSD Storage", "5TB Bandwidth", "Dedicated Support", "Custom Configuration"},
		Image:         "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=300&fit=crop",
		InStock:       true,
		Monthly:       true,
		Rating:        4.7,
		Reviews:       76,
	},
}

var seedCategories = []Category{
	{ID: "office-suite", Name: "Office Suite", Description: "Microsoft Office applications and subscriptions", Icon: "FileText"},
	{ID: "operating-system", Name: "Operating System", Description: "Windows OS licenses for home and business", Icon: "Monitor"},
	{ID: "server-license", Name: "Server License", Description: "Windows Server and enterprise solutions", Icon: "Server"},
	{ID: "vps-hosting", Name: "VPS Hosting", Description: "Virtual Private Server hosting solutions", Icon: "Cloud"},
}

// Default returns the catalog the storefront ships with.
func Default() *Catalog {
	c, err := New(seedProducts, seedCategories)
	if err != nil {
		panic(err)
	}
	return c
}
