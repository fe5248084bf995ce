package seed

var categoryNames = []string{
	"Technology", "Business", "Education", "Entertainment", "Sports",
	"Health & Wellness", "Arts & Culture", "Science", "Food & Drink", "Travel",
	"Music", "Fashion", "Photography", "Gaming", "Networking",
}

var categoryDescriptions = []string{
	"Tech conferences, workshops, and seminars",
	"Business meetings, networking events, and conferences",
	"Educational workshops, courses, and seminars",
	"Entertainment shows, concerts, and performances",
	"Sports events, tournaments, and competitions",
	"Health workshops, yoga sessions, and wellness programs",
	"Art exhibitions, cultural festivals, and performances",
	"Science fairs, research presentations, and lectures",
	"Food festivals, cooking classes, and tastings",
	"Travel meetups, adventure trips, and tours",
	"Music concerts, festivals, and live performances",
	"Fashion shows, style workshops, and exhibitions",
	"Photography workshops, exhibitions, and contests",
	"Gaming tournaments, esports events, and conventions",
	"Networking events, meetups, and social gatherings",
}

var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "James", "Emma",
	"Robert", "Olivia", "William", "Sophia", "Richard", "Isabella", "Joseph",
	"Ava", "Thomas", "Mia", "Charles", "Charlotte", "Daniel", "Amelia",
	"Matthew", "Harper", "Anthony", "Evelyn", "Mark", "Abigail", "Donald",
	"Elizabeth", "Steven", "Sofia", "Paul", "Aria", "Andrew", "Scarlett",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	"Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis",
	"Robinson", "Walker", "Young", "Allen", "King", "Wright", "Scott",
	"Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
}

var eventNames = []string{
	"Annual Tech Summit", "Business Networking Night", "Python Workshop",
	"Jazz Music Festival", "Marathon Run", "Yoga Retreat", "Art Exhibition",
	"Science Fair", "Food Festival", "Travel Expo", "Rock Concert",
	"Fashion Week", "Photography Contest", "Gaming Tournament",
	"Startup Pitch Night", "Data Science Conference", "Web Development Bootcamp",
	"Design Thinking Workshop", "AI & Machine Learning Summit", "Blockchain Forum",
	"Digital Marketing Masterclass", "Leadership Seminar", "Innovation Hub",
	"Creative Writing Workshop", "Film Festival", "Comedy Night",
	"Dance Performance", "Theater Show", "Poetry Reading", "Book Launch",
}

var venues = []string{
	"Convention Center", "Grand Hotel", "City Hall", "University Campus",
	"Sports Complex", "Art Gallery", "Concert Hall", "Community Center",
	"Tech Hub", "Business District", "Park Amphitheater", "Museum",
	"Stadium", "Conference Room A", "Auditorium", "Exhibition Hall",
	"Outdoor Venue", "Rooftop Terrace", "Beach Resort", "Mountain Lodge",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
}

var quarterHours = []int{0, 15, 30, 45}

const descriptionFormat = "Join us for an exciting %s. This event brings together professionals, " +
	"enthusiasts, and experts in the field. Don't miss out on this amazing opportunity to learn, " +
	"network, and have fun!"
