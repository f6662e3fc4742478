package content

// Default 返回首次访问或重置时使用的默认站点内容。
// 每次调用都构造全新副本，避免调用方共享底层切片。
func Default() Document {
	return Document{
		Company: Company{
			Name:              "STAR COMPUTERS",
			Tagline:           "SINCE 1993",
			Description:       "Excellence in Technology Since 1993. Your trusted partner for all IT solutions in Bangladesh.",
			Phone:             "+88-01712-908621",
			Email:             "star@hotmail.com",
			OfficeAddress:     "1205, East Monipur, Mirpur\nDhaka-1216, Bangladesh",
			RegisteredAddress: "Hazi Tower (1st floor)\n796, Kazipara, Mirpur",
		},
		HeroSlides: []HeroSlide{
			{
				ID:             1,
				Badge:          "30+ Years of Excellence",
				BadgeIcon:      "fas fa-star",
				Title:          "Your Trusted",
				TitleHighlight: "Technology",
				TitleEnd:       "Partner",
				Description:    "Delivering cutting-edge IT solutions, expert consultancy, and comprehensive training since 1993.",
				PrimaryBtn:     &Button{Text: "Get Started", Link: "#contact", Icon: "fas fa-arrow-right"},
				SecondaryBtn:   &Button{Text: "Our Services", Link: "#services", Icon: "fas fa-play-circle"},
				Gradient:       "from-slate-900/90 via-blue-900/80 to-slate-900/90",
				BgImage:        "https://images.unsplash.com/photo-1518770660439-4636190af475?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			},
			{
				ID:             2,
				Badge:          "Professional Training",
				BadgeIcon:      "fas fa-graduation-cap",
				Title:          "Expert",
				TitleHighlight: "IT Training",
				TitleEnd:       "",
				Description:    "Empower your team with industry-leading technology skills. From basics to advanced certifications.",
				PrimaryBtn:     &Button{Text: "Explore Programs", Link: "#services", Icon: "fas fa-arrow-right"},
				SecondaryBtn:   nil,
				Gradient:       "from-indigo-900/90 via-purple-900/85 to-slate-900/90",
				BgImage:        "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			},
			{
				ID:             3,
				Badge:          "Complete Solutions",
				BadgeIcon:      "fas fa-tools",
				Title:          "Sales &",
				TitleHighlight: "Service",
				TitleEnd:       "",
				Description:    "Quality hardware, software solutions, and dedicated after-sales support to keep your business running.",
				PrimaryBtn:     &Button{Text: "Contact Us", Link: "#contact", Icon: "fas fa-arrow-right"},
				SecondaryBtn:   nil,
				Gradient:       "from-emerald-900/90 via-teal-900/85 to-slate-900/90",
				BgImage:        "https://images.unsplash.com/photo-1581092921461-eab62e97a780?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			},
		},
		Stats: []Stat{
			{ID: 1, Value: "30+", Label: "Years Experience", Gradient: "from-yellow-400 to-amber-500"},
			{ID: 2, Value: "1000+", Label: "Happy Clients", Gradient: "from-blue-400 to-cyan-500"},
			{ID: 3, Value: "500+", Label: "Projects Done", Gradient: "from-purple-400 to-pink-500"},
			{ID: 4, Value: "24/7", Label: "Support", Gradient: "from-emerald-400 to-teal-500"},
		},
		Services: []Service{
			{
				ID:          1,
				Title:       "Consultancy",
				Description: "Expert guidance and strategic IT planning to help your business leverage technology effectively and achieve your goals.",
				Icon:        "fas fa-lightbulb",
				ColorClass:  "blue",
				Gradient:    "from-blue-500 to-cyan-500",
			},
			{
				ID:          2,
				Title:       "Training",
				Description: "Comprehensive training programs designed to empower your team with the latest technology skills and best practices.",
				Icon:        "fas fa-graduation-cap",
				ColorClass:  "purple",
				Gradient:    "from-purple-500 to-pink-500",
			},
			{
				ID:          3,
				Title:       "Sales & Service",
				Description: "Quality computer hardware and software solutions with reliable after-sales support to keep your systems running smoothly.",
				Icon:        "fas fa-cogs",
				ColorClass:  "emerald",
				Gradient:    "from-emerald-500 to-teal-500",
			},
		},
		About: About{
			Badge:          "About Us",
			Title:          "Trusted Since",
			TitleHighlight: "1993",
			Description1:   "For over three decades, Star Computers has been at the forefront of technology solutions in Dhaka. We combine industry expertise with personalized service to deliver exceptional value to our clients.",
			Description2:   "Our commitment to excellence and customer satisfaction has made us a preferred technology partner for businesses and individuals across Bangladesh.",
			WhyChooseUs: []WhyChooseUsItem{
				{Title: "Three Decades of Expertise", Subtitle: "Proven track record in delivering IT solutions", Gradient: "from-emerald-400 to-teal-500"},
				{Title: "Comprehensive Services", Subtitle: "From consultancy to sales and training", Gradient: "from-blue-400 to-cyan-500"},
				{Title: "Dedicated Support", Subtitle: "Always here when you need us", Gradient: "from-purple-400 to-pink-500"},
				{Title: "Competitive Pricing", Subtitle: "Best value for your investment", Gradient: "from-yellow-400 to-amber-500"},
			},
		},
		Contact: Contact{
			Badge:          "Get In Touch",
			Title:          "Contact Us",
			Subtitle:       "We're here to help with all your technology needs",
			CtaTitle:       "Ready to Get Started?",
			CtaDescription: "Contact us today to discuss how we can help transform your technology infrastructure and drive your business forward.",
		},
		SocialLinks: SocialLinks{
			Facebook: "#",
			Twitter:  "#",
			LinkedIn: "#",
			WhatsApp: "#",
		},
		Footer: Footer{
			Copyright:    "© 2026 Star Computers. All rights reserved.",
			DesignedBy:   "Designed by Kazi Samin Nawal",
			DesignerLink: "https://github.com/samZero-0",
		},
	}
}
