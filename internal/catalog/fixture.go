package catalog

import "github.com/spec-kit/videogames-portal/internal/domain"

// fixtureList is the catalog as returned by List, in fixed order.
var fixtureList = []domain.VideoGame{
	{
		ID:          "1",
		Title:       "The Legend of Zelda: Breath of the Wild",
		Genre:       "Action-Adventure",
		Platform:    "Nintendo Switch",
		ReleaseYear: 2017,
		Rating:      9.3,
		Description: "An epic adventure in the kingdom of Hyrule.",
		ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400",
		Price:       59.99,
	},
	{
		ID:          "2",
		Title:       "God of War",
		Genre:       "Action",
		Platform:    "PlayStation 4",
		ReleaseYear: 2018,
		Rating:      9.1,
		Description: "Kratos and his son embark on a journey through Norse mythology.",
		ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
		Price:       49.99,
	},
	{
		ID:          "3",
		Title:       "Cyberpunk 2077",
		Genre:       "RPG",
		Platform:    "PC",
		ReleaseYear: 2020,
		Rating:      7.8,
		Description: "An open-world RPG set in the futuristic Night City.",
		ImageURL:    "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=400",
		Price:       39.99,
	},
	{
		ID:          "4",
		Title:       "Super Mario Odyssey",
		Genre:       "Platform",
		Platform:    "Nintendo Switch",
		ReleaseYear: 2017,
		Rating:      9.2,
		Description: "Mario embarks on a massive, globe-trotting 3D adventure.",
		ImageURL:    "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=400",
		Price:       54.99,
	},
	{
		ID:          "5",
		Title:       "Elden Ring",
		Genre:       "Action RPG",
		Platform:    "Multi-platform",
		ReleaseYear: 2022,
		Rating:      9.5,
		Description: "A fantasy action-RPG adventure set within a world created by Hidetaka Miyazaki and George R.R. Martin.",
		ImageURL:    "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400",
		Price:       69.99,
	},
}

// fixtureDetails mirrors fixtureList with the extended descriptions
// returned by GetByID.
var fixtureDetails = []domain.VideoGame{
	{
		ID:          "1",
		Title:       "The Legend of Zelda: Breath of the Wild",
		Genre:       "Action-Adventure",
		Platform:    "Nintendo Switch",
		ReleaseYear: 2017,
		Rating:      9.3,
		Description: "An epic adventure in the kingdom of Hyrule where Link awakens from a deep slumber to a world in ruins. Players can explore vast landscapes, solve puzzles, and battle enemies in this masterpiece.",
		ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400",
		Price:       59.99,
	},
	{
		ID:          "2",
		Title:       "God of War",
		Genre:       "Action",
		Platform:    "PlayStation 4",
		ReleaseYear: 2018,
		Rating:      9.1,
		Description: "Kratos and his son Atreus embark on a deeply personal journey through the Norse realms. This reboot brings emotional depth and stunning visuals to the beloved franchise.",
		ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
		Price:       49.99,
	},
	{
		ID:          "3",
		Title:       "Cyberpunk 2077",
		Genre:       "RPG",
		Platform:    "PC",
		ReleaseYear: 2020,
		Rating:      7.8,
		Description: "An open-world RPG set in the futuristic Night City. Customize your character and make choices that shape the story in this immersive cyberpunk world.",
		ImageURL:    "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=400",
		Price:       39.99,
	},
	{
		ID:          "4",
		Title:       "Super Mario Odyssey",
		Genre:       "Platform",
		Platform:    "Nintendo Switch",
		ReleaseYear: 2017,
		Rating:      9.2,
		Description: "Mario embarks on a massive, globe-trotting 3D adventure with his new ally Cappy. Explore amazing worlds and possess enemies and objects with Cappy's power.",
		ImageURL:    "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=400",
		Price:       54.99,
	},
	{
		ID:          "5",
		Title:       "Elden Ring",
		Genre:       "Action RPG",
		Platform:    "Multi-platform",
		ReleaseYear: 2022,
		Rating:      9.5,
		Description: "A fantasy action-RPG adventure set within a world created by Hidetaka Miyazaki and George R.R. Martin. Explore the Lands Between and uncover its mysteries.",
		ImageURL:    "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400",
		Price:       69.99,
	},
}
