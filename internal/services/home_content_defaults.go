package services

// defaultHomeContent is served for every section that has never been written.
const defaultHomeContent = `{
  "hero": {
    "title": "Find Your Dream Property",
    "subtitle": "Discover the perfect place to call home with MegaReality",
    "backgroundImage": "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1920&q=80"
  },
  "about": {
    "title": "About MegaReality",
    "description": "We are a leading real estate company dedicated to helping you find your perfect property. With years of experience and a commitment to excellence, we make your property dreams come true.",
    "image": "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=800&q=80"
  },
  "contact": {
    "phone": "+91 98765 43210",
    "email": "info@megareality.com",
    "address": "123 Real Estate Avenue, Gurugram, Haryana 122001"
  },
  "properties": {
    "title": "Featured Properties",
    "description": "Discover our handpicked selection of premium properties"
  },
  "agents": {
    "title": "Our Expert Agents",
    "description": "Meet our team of experienced real estate professionals"
  },
  "services": {
    "title": "Our Services",
    "description": "Comprehensive real estate solutions tailored to your needs"
  },
  "autoscroll": {
    "title": "Auto-Scroll Section",
    "description": "Dynamic content that auto-scrolls to showcase our offerings",
    "pages": [
      {
        "backgroundImage": "https://images.unsplash.com/photo-1560448204-e02f33c33ddc?w=1920&q=80",
        "title": "Premium Properties",
        "description": "Discover our collection of premium properties in the best locations"
      },
      {
        "backgroundImage": "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1920&q=80",
        "title": "Luxury Living",
        "description": "Experience luxury living with our exclusive property collection"
      },
      {
        "backgroundImage": "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?w=1920&q=80",
        "title": "Modern Designs",
        "description": "Modern architectural designs for contemporary living"
      },
      {
        "backgroundImage": "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1920&q=80",
        "title": "Affordable Options",
        "description": "Find affordable options without compromising on quality"
      },
      {
        "backgroundImage": "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=1920&q=80",
        "title": "Investment Opportunities",
        "description": "Great investment opportunities with high returns"
      }
    ]
  },
  "typewriter": {
    "messages": [
      "Find Your Dream Property",
      "Discover the perfect place to call home"
    ]
  }
}`
