package catalog

// seedProducts is the demo catalog loaded into an empty database. Mirrors
// the kind of inventory a rural Colombian micro-business sells: food
// products, artisan goods and bookable services.
var seedProducts = []Product{
	{
		ID:          "prod-001",
		Name:        "Miel de abejas 300g",
		Category:    "alimentos",
		Description: "Miel pura de abejas de los Llanos, frasco de vidrio de 300 gramos. Producto natural sin aditivos.",
		Price:       18000,
		InStock:     true,
	},
	{
		ID:          "prod-002",
		Name:        "Miel de abejas 500g",
		Category:    "alimentos",
		Description: "Miel pura de abejas de los Llanos, frasco de vidrio de 500 gramos. Producto natural sin aditivos.",
		Price:       28000,
		InStock:     true,
	},
	{
		ID:          "prod-003",
		Name:        "Café orgánico molido 500g",
		Category:    "alimentos",
		Description: "Café orgánico de origen casanareño, tostión media, molido para greca o prensa francesa.",
		Price:       32000,
		InStock:     true,
	},
	{
		ID:          "prod-004",
		Name:        "Arepas de maíz pelao x10",
		Category:    "alimentos",
		Description: "Paquete de diez arepas artesanales de maíz pelao, listas para asar. Pedido con un día de anticipación.",
		Price:       15000,
		InStock:     true,
	},
	{
		ID:          "prod-005",
		Name:        "Mochila tejida llanera",
		Category:    "artesanias",
		Description: "Mochila tejida a mano por artesanas de Maní, fibras naturales, diseños tradicionales llaneros.",
		Price:       85000,
		InStock:     false,
	},
	{
		ID:          "prod-006",
		Name:        "Sombrero llanero",
		Category:    "artesanias",
		Description: "Sombrero tradicional llanero en fibra natural, tallas M y L disponibles.",
		Price:       60000,
		InStock:     true,
	},
	{
		ID:          "serv-001",
		Name:        "Asesoría tecnológica (hora)",
		Category:    "servicios",
		Description: "Hora de asesoría en adopción de tecnología para micronegocios: página web, redes sociales, ventas por WhatsApp.",
		Price:       70000,
		InStock:     true,
	},
	{
		ID:          "serv-002",
		Name:        "Domicilio en Maní",
		Category:    "servicios",
		Description: "Entrega a domicilio dentro del casco urbano de Maní, Casanare. Mismo día para pedidos antes de las 3:00 PM.",
		Price:       5000,
		InStock:     true,
	},
}
