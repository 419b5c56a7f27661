package config

import "github.com/namsral/flag"

type Config struct {
	LetterDistributionName string
	RandomSeed             uint64
	RackSize               int
	Debug                  bool
}

func DefaultConfig() Config {
	return Config{
		LetterDistributionName: "English",
		RackSize:               7,
	}
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("fichas", flag.ContinueOnError)
	fs.StringVar(&c.LetterDistributionName, "letter-distribution", "English",
		"the letter distribution to use. Only English for now")
	fs.Uint64Var(&c.RandomSeed, "seed", 0,
		"seed for the tile bag; 0 picks one at random")
	fs.IntVar(&c.RackSize, "rack-size", 7, "number of tiles on a full rack")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	return err
}
