// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prompts

// Default returns the built-in prompt calendar.
// Months that have not been written yet are empty.
func Default() *Calendar {
	c := defaultCalendar
	return &c
}

var defaultCalendar = Calendar{
	// January
	nil,
	// February
	nil,
	// March
	{
		{Red: "Move like a robot", Blue: "Talk like a robot", Type: WouldYouRather},
		{Red: "Chocolate", Blue: "Vanilla", Type: ThisOrThat},
		{Red: "Thor", Blue: "The Hulk", Type: WhoWouldWin},
		{Red: "Mario", Blue: "Sonic", Type: WhoWouldWin},
		{Red: "Roomba with a knife", Blue: "Drone with a water gun", Type: WhoWouldWin},
		{Red: "Have hair that changes color based on mood", Blue: "Have glow in the dark skin", Type: WouldYouRather},
		{Red: "Star Wars", Blue: "Star Trek", Type: ThisOrThat},
		{Red: "Coffee", Blue: "Tea", Type: ThisOrThat},
		{Red: "Live without music", Blue: "Live without TV", Type: WouldYouRather},
		{Red: "Link", Blue: "Kratos", Type: WhoWouldWin},
		{Red: "Tesla", Blue: "Edison", Type: WhoWouldWin},
		{Red: "Terraria", Blue: "Minecraft", Type: ThisOrThat},
		{Red: "Spicy", Blue: "Mild", Type: ThisOrThat},
		{Red: "Only whisper", Blue: "Only shout", Type: WouldYouRather},
		{Red: "Tetris Blocks", Blue: "Minecraft Blocks", Type: WhoWouldWin},
		{Red: "Only talk in riddles", Blue: "Only talk in emojis", Type: WouldYouRather},
		{Red: "Talk to plants", Blue: "Talk to animals", Type: WouldYouRather},
		{Red: "Bowser", Blue: "Dr. Robotnik", Type: WhoWouldWin},
		{Red: "Hot Coffee", Blue: "Iced Coffee", Type: ThisOrThat},
		{Red: "Cake", Blue: "Pie", Type: ThisOrThat},
		{Red: "The Simpsons", Blue: "Family Guy", Type: ThisOrThat},
		{Red: "Iron Man", Blue: "Captian American", Type: WhoWouldWin},
		{Red: "Godzilla", Blue: "King Kong", Type: WhoWouldWin},
		{Red: "Pizza", Blue: "Burgers", Type: ThisOrThat},
		{Red: "Always burp confetti", Blue: "Always sneeze glitter", Type: WouldYouRather},
		{Red: "Ice Cream", Blue: "Cake", Type: ThisOrThat},
		{Red: "Have an extra eye", Blue: "Have an extra ear", Type: WouldYouRather},
		{Red: "Wear a tuxedo to bed", Blue: "Wear pajamas to every formal event", Type: WouldYouRather},
		{Red: "Have a mariachi band", Blue: "Have a laugh track", Type: WouldYouRather},
		{Red: "Always wear clown shoes", Blue: "Always wear a giant sombrero", Type: WouldYouRather},
		{Red: "A lion with eagle wings", Blue: "A shark that can breathe air", Type: WhoWouldWin},
	},
	// April
	{
		{Red: "Johnny English", Blue: "Mr. Bean", Type: WhoWouldWin},
		{Red: "The Beach", Blue: "The Mountains", Type: ThisOrThat},
		{Red: "Be able to control fire", Blue: "Be able to control water", Type: WouldYouRather},
		{Red: "You, literally", Blue: "A horde of five year olds", Type: WhoWouldWin},
		{Red: "iPhone", Blue: "Android", Type: ThisOrThat},
		{Red: "Go to the future", Blue: "Go to the past", Type: WouldYouRather},
		{Red: "One Trillion Lions", Blue: "The Sun", Type: WhoWouldWin},
		{Red: "Never use social media again", Blue: "Never watch a movie again", Type: WouldYouRather},
		{Red: "Boba Fett", Blue: "The Predator", Type: WhoWouldWin},
		{Red: "Peanut butter", Blue: "Jelly", Type: ThisOrThat},
		{Red: "Always be 10 minutes late", Blue: "Always be 20 minutes early", Type: WouldYouRather},
		{Red: "The Kool-Aid Man", Blue: "The Michelin Man", Type: WhoWouldWin},
		{Red: "Halloween", Blue: "Christmas", Type: ThisOrThat},
		{Red: "Go to the Moon", Blue: "Go to Mars", Type: WouldYouRather},
		{Red: "Shark with bear hands", Blue: "Bear with shark hands", Type: WhoWouldWin},
		{Red: "PC", Blue: "Console", Type: ThisOrThat},
		{Red: "Lose the ability to read", Blue: "Lose the ability to speak", Type: WouldYouRather},
		{Red: "Waffles", Blue: "Pancakes", Type: ThisOrThat},
		{Red: "Gandalf", Blue: "Dumbledore", Type: WhoWouldWin},
		{Red: "The city", Blue: "The country", Type: ThisOrThat},
		{Red: "Be a famous director", Blue: "Be a famous actor", Type: WouldYouRather},
		{Red: "Ned Flanders", Blue: "Mr. Rogers", Type: WhoWouldWin},
		{Red: "Have a bottomless box of Legos", Blue: "Have a bottomless gas tank", Type: WouldYouRather},
		{Red: "Open gifts on Christmas Eve", Blue: "Open gifts on Christmas Day", Type: WouldYouRather},
		{Red: "Bath", Blue: "Shower", Type: ThisOrThat},
		{Red: "Spend the weekend with pirates", Blue: "Spend the weekend with ninjas", Type: WouldYouRather},
		{Red: "Drink sour milk", Blue: "Brush your teeth with soap", Type: WouldYouRather},
		{Red: "Grilled Cheese", Blue: "Tacos", Type: ThisOrThat},
		{Red: "Goku", Blue: "Superman", Type: WhoWouldWin},
		{Red: "Master Chief", Blue: "The Doom Slayer", Type: WhoWouldWin},
	},
	// May
	{
		{Red: "Star in a TV show", Blue: "Star in a movie", Type: WouldYouRather},
		{Red: "Big city", Blue: "Small town", Type: ThisOrThat},
		{Red: "Spring", Blue: "Fall", Type: ThisOrThat},
		{Red: "Be beautiful and stupid", Blue: "Be unattractive but a genius", Type: WouldYouRather},
		{Red: "Coke", Blue: "Pepsi", Type: ThisOrThat},
		{Red: "Day", Blue: "Night", Type: ThisOrThat},
		{Red: "Neo", Blue: "John Wick", Type: WhoWouldWin},
		{Red: "Cold", Blue: "Hot", Type: ThisOrThat},
		{Red: "Be able to fly", Blue: "Be able to teleport", Type: WouldYouRather},
		{Red: "R2-D2", Blue: "WALL-E", Type: WhoWouldWin},
		{Red: "Dogs", Blue: "Cats", Type: ThisOrThat},
		{Red: "James Bond", Blue: "Jason Bourne", Type: WhoWouldWin},
		{Red: "The Flash", Blue: "Quicksilver", Type: WhoWouldWin},
		{Red: "Batman", Blue: "Superman", Type: WhoWouldWin},
		{Red: "Summer", Blue: "Winter", Type: ThisOrThat},
		{Red: "Have seven fingers on each hand", Blue: "Have seven toes on each foot", Type: WouldYouRather},
		{Red: "Red", Blue: "Blue", Type: ThisOrThat},
		{Red: "Team Fortress 2", Blue: "Overwatch", Type: ThisOrThat},
		{Red: "Xbox", Blue: "Playstation", Type: ThisOrThat},
		{Red: "Dine in", Blue: "Eat out", Type: ThisOrThat},
		{Red: "Rain", Blue: "Snow", Type: ThisOrThat},
		{Red: "Move like a robot", Blue: "Talk like a robot", Type: WouldYouRather},
		{Red: "George Costanza", Blue: "Jerry Seinfeld", Type: WhoWouldWin},
		{Red: "Robocop", Blue: "The Terminator (T-800)", Type: WhoWouldWin},
		{Red: "Have a photographic memory", Blue: "Be a genius", Type: WouldYouRather},
		{Red: "Yoda", Blue: "Dumbledore", Type: WhoWouldWin},
		{Red: "Hot weather", Blue: "Cold weather", Type: ThisOrThat},
		{Red: "Have a pet dragon", Blue: "Have a pet unicorn", Type: WouldYouRather},
		{Red: "live in a treehouse", Blue: "live in a cave", Type: WouldYouRather},
		{Red: "Optimus Prime", Blue: "Voltron", Type: WhoWouldWin},
		{Red: "Summer", Blue: "Winter", Type: ThisOrThat},
	},
	// June
	{
		{Red: "Comedy", Blue: "Horror", Type: ThisOrThat},
		{Red: "Books", Blue: "Movies", Type: ThisOrThat},
		{Red: "Zombies", Blue: "Vampires", Type: ThisOrThat},
		{Red: "Aliens", Blue: "Ghosts", Type: ThisOrThat},
		{Red: "Avatar", Blue: "Dune", Type: ThisOrThat},
		{Red: "Pokémon", Blue: "Digimon", Type: ThisOrThat},
		{Red: "Tintin", Blue: "Indiana Jones", Type: ThisOrThat},
		{Red: "Nintendo", Blue: "Sega", Type: ThisOrThat},
		{Red: "Smash Bros", Blue: "Tekken", Type: ThisOrThat},
		{Red: "Street Fighter", Blue: "Mortal Kombat", Type: ThisOrThat},
		{Red: "Guitar Hero", Blue: "Dance Dance Revolution", Type: ThisOrThat},
		{Red: "Sneakers", Blue: "Sandals", Type: ThisOrThat},
		{Red: "Homer Simpson", Blue: "Peter Griffin", Type: WhoWouldWin},
	},
	// July
	nil,
	// August
	nil,
	// September
	nil,
	// October
	{
		{Red: "Freddy Krueger", Blue: "Pennywise", Type: WhoWouldWin},
		{Red: "Dracula", Blue: "Frankenstein", Type: WhoWouldWin},
		{Red: "Jason Voorhees", Blue: "Michael Myers", Type: WhoWouldWin},
		{Red: "The Mummy", Blue: "The Werewolf", Type: WhoWouldWin},
		{Red: "Ghostface", Blue: "Jigsaw", Type: WhoWouldWin},
		{Red: "The Demogorgon", Blue: "The Xenomorph", Type: WhoWouldWin},
	},
	// November
	nil,
	// December
	nil,
}
