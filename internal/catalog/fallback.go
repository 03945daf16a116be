package catalog

import "github.com/sheshnag/movie-booking/internal/model"

// defaultShowtimes is the fixed showtime grid offered for every movie.
var defaultShowtimes = []string{"12:00PM", "3:00PM", "6:00PM", "9:00PM"}

// fallbackMovies is the local catalog served whenever the remote
// provider is unreachable or no API key is configured.  The booking
// flow must keep working from this data alone.
var fallbackMovies = []model.Movie{
	{
		ID:          "1",
		Title:       "Saiyaara",
		Poster:      "https://images.moneycontrol.com/static-mcnews/2025/07/20250718081410_saiyaara.jpg?impolicy=website&width=770&height=431",
		Rating:      8.5,
		Duration:    "2h 20min",
		Genre:       "Drama",
		Showtimes:   defaultShowtimes,
		Description: "Saiyaara is a heart-touching drama that explores the journey of love, loss, and hope. Experience the emotional rollercoaster with breathtaking performances and soulful music.",
		ReleaseDate: "2025-01-15",
		Director:    "Imtiaz Ali",
		Cast:        []string{"Kartik Aaryan", "Sara Ali Khan"},
		Language:    "Hindi",
	},
	{
		ID:          "2",
		Title:       "Ramayana",
		Poster:      "https://images.ctfassets.net/3sjsytt3tkv5/4TZbGmtfPDnaK6oUTvpn55/5f293d924de5cf48d419f3460603de5d/1920X1080_DNEG_RD_With_Logo.jpg",
		Rating:      9.0,
		Duration:    "2h 40min",
		Genre:       "Mythology, Drama",
		Showtimes:   defaultShowtimes,
		Description: "A grand retelling of the epic Ramayana, starring Ranbir Kapoor and Sai Pallavi, set to be one of the biggest releases of 2025.",
		ReleaseDate: "2025-03-21",
		Director:    "Nitesh Tiwari",
		Cast:        []string{"Ranbir Kapoor", "Sai Pallavi", "Yash"},
		Language:    "Hindi",
	},
	{
		ID:          "3",
		Title:       "Brahmastra Part 2: Dev",
		Poster:      "https://preview.redd.it/ranveer-dp-confirmed-in-brahmastra-2-poster-leaked-v0-ewnp4uywjurc1.jpeg?auto=webp&s=0a9dac0bd63348d7a7c0e9f7369bda015055f4ef",
		Rating:      8.5,
		Duration:    "2h 45min",
		Genre:       "Fantasy, Adventure",
		Showtimes:   defaultShowtimes,
		Description: "The next chapter in the Astraverse, exploring the story of Dev and the mysteries of the Brahmastra.",
		ReleaseDate: "2025-06-20",
		Director:    "Ayan Mukerji",
		Cast:        []string{"Ranbir Kapoor", "Alia Bhatt", "Ranveer Singh"},
		Language:    "Hindi",
	},
	{
		ID:          "4",
		Title:       "War 2",
		Poster:      "https://www.yashrajfilms.com/images/default-source/movies/war2/war2_767x430.jpg?sfvrsn=8e46decc_1",
		Rating:      8.4,
		Duration:    "2h 35min",
		Genre:       "Action, Thriller",
		Showtimes:   defaultShowtimes,
		Description: "Hrithik Roshan returns in this high-stakes action thriller, continuing the War franchise.",
		ReleaseDate: "2025-08-15",
		Director:    "Ayan Mukerji",
		Cast:        []string{"Hrithik Roshan", "Kiara Advani", "NTR Jr"},
		Language:    "Hindi",
	},
}
