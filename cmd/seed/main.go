package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fjordlearn/fjordlearn-backend/internal/config"
	"github.com/fjordlearn/fjordlearn-backend/internal/database"
	"github.com/fjordlearn/fjordlearn-backend/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// option is one answer choice of a seeded question.
type option struct {
	text    string
	correct bool
}

// seedQuestion is one question with its choices, or accepted answers for
// fill-in questions.
type seedQuestion struct {
	text         string
	questionType string
	options      []option
}

func single(text string, options ...option) seedQuestion {
	return seedQuestion{text: text, questionType: "single", options: options}
}

func fill(text string, accepted ...string) seedQuestion {
	opts := make([]option, 0, len(accepted))
	for _, a := range accepted {
		opts = append(opts, option{text: a, correct: true})
	}
	return seedQuestion{text: text, questionType: "fill", options: opts}
}

var a1Questions = []seedQuestion{
	single("Jeg ___ kaffe hver morgen.", option{"drikker", true}, option{"drikke", false}, option{"drikk", false}),
	single("Hvor mange __ du?", option{"år er", true}, option{"år har", false}, option{"år går", false}),
	single("Vi ___ på kino i kveld.", option{"skal", true}, option{"skal til", false}, option{"går", false}),
	single("Hun bor ___ Oslo.", option{"i", true}, option{"på", false}, option{"til", false}),
	single("Velg hilsenen som betyr 'hello'.", option{"Hei", true}, option{"Ha det", false}, option{"Takk", false}),
	single("Han ___ norsk hver dag.", option{"lærer", true}, option{"leste", false}, option{"lært", false}),
	single("Velg riktig artikkel: ___ stol", option{"en", true}, option{"ei", false}, option{"et", false}),
	single("Hvilket ord passer? 'Jeg liker ___ blå jakken.'", option{"den", true}, option{"det", false}, option{"de", false}),
	single("___ går det?", option{"Hvordan", true}, option{"Hvor", false}, option{"Når", false}),
}

var a2Questions = []seedQuestion{
	single("Han er syk, så han ___ hjemme i dag.", option{"blir", true}, option{"ble", false}, option{"bli", false}),
	single("Vi har ikke tid, ___ vi må gå nå.", option{"så", true}, option{"fordi", false}, option{"men", false}),
	single("Boken ligger ___ bordet.", option{"på", true}, option{"i", false}, option{"til", false}),
	single("Jeg har bodd her ___ to år.", option{"i", true}, option{"på", false}, option{"om", false}),
	single("Hvilket verb passer? 'De ___ å reise til Bergen.'", option{"planlegger", true}, option{"planla", false}, option{"planlagt", false}),
	single("Du må ___ mer norsk for å bli bedre.", option{"øve", true}, option{"øv", false}, option{"øvet", false}),
	single("Hun pleier ___ ta bussen.", option{"å", true}, option{"og", false}, option{"til", false}),
	single("Hvilken form er riktig? 'Et ___ hus'", option{"stort", true}, option{"stor", false}, option{"store", false}),
	single("Setningen: 'Jeg har spist middag' er i ___", option{"presens perfektum", true}, option{"preteritum", false}, option{"futurum", false}),
	single("Velg riktig alternativ: 'Kan du hjelpe meg, ___?'", option{"vær så snill", true}, option{"vær så god", false}, option{"takk", false}),
}

var b1Questions = []seedQuestion{
	single("Hvis det ___ sol i morgen, drar vi på tur.", option{"blir", true}, option{"ble", false}, option{"blitt", false}),
	single("Jeg ___ ikke hvorfor han ikke kom.", option{"skjønner", true}, option{"skjønte", false}, option{"skjønt", false}),
	single("Hun sa at hun ___ komme litt senere.", option{"ville", true}, option{"skal", false}, option{"har", false}),
	single("Setningen 'Jeg skulle ønske jeg hadde mer tid' uttrykker ___", option{"et ønske", true}, option{"et tilbud", false}, option{"en påstand", false}),
	single("Hvilket ord passer? 'Han tok ansvar ___ å rydde opp.'", option{"for", true}, option{"å", false}, option{"til", false}),
	single("Hva betyr 'å stå på som vanlig'?", option{"jobbe hardt", true}, option{"slappe av", false}, option{"gå hjem", false}),
	single("Velg riktig ordstilling: ' ___ jeg reiste til Norge, lærte jeg litt språk.'", option{"Før", true}, option{"Når", false}, option{"Da", false}),
	single("'Han er kjent for å være punktlig' betyr ___", option{"alltid presis", true}, option{"alltid sen", false}, option{"aldri presis", false}),
	single("Velg riktig preposisjon: 'Vi er stolte ___ dere.'", option{"av", true}, option{"på", false}, option{"med", false}),
}

var b2Questions = []seedQuestion{
	single("Han opptrådte ___ en erfaren taler.", option{"som", true}, option{"for", false}, option{"til", false}),
	single("'Selv om det regner, drar vi' uttrykker ___", option{"motsetning", true}, option{"årsak", false}, option{"konsekvens", false}),
	single("Hvilket ord passer? 'Det er ingen tvil ___ at han har rett.'", option{"om", true}, option{"på", false}, option{"for", false}),
	single("'Å sette noe på spissen' betyr ___", option{"å overdrive for å tydeliggjøre", true}, option{"å legge det bort", false}, option{"å avslutte", false}),
	single("Hva er mest naturlig? 'Han slo ___ de andre forslagene.'", option{"ned", false}, option{"fast", true}, option{"på", false}),
	single("Hvilken omskriving av passiv er riktig? 'Boken ble skrevet av henne.'", option{"Hun skrev boken.", true}, option{"Hun skriver boken.", false}, option{"Hun ble skrevet boken.", false}),
	single("Velg mest idiomatiske: 'Det er på høy tid ___ vi starter.'", option{"at", true}, option{"om", false}, option{"hvis", false}),
	single("Hvilket bindeord passer best? 'Han kom ikke, ___ han var invitert.'", option{"selv om", true}, option{"fordi", false}, option{"mens", false}),
	single("Hva betyr 'å ha is i magen'?", option{"å være tålmodig", true}, option{"å være sint", false}, option{"å gi opp", false}),
	single("'Å legge alle kortene på bordet' betyr ___", option{"å være helt ærlig", true}, option{"å gi opp", false}, option{"å lure noen", false}),
}

// fillQuestions exercise the free-text grading path.
var fillQuestions = []seedQuestion{
	fill("Skriv verbet 'å drikke' i presens.", "drikker"),
	fill("Hva er det norske ordet for 'thank you'?", "takk", "tusen takk"),
	fill("Fullfør: 'Jeg kommer ___ Norge.' (preposisjon)", "fra"),
	fill("Skriv verbet 'å være' i preteritum.", "var"),
	fill("Hva heter hovedstaden i Norge?", "Oslo"),
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding Sample Tests ===")

	fmt.Println("Clearing previous tests...")
	if _, err := pool.Exec(ctx, `DELETE FROM tests`); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear tests")
	}

	levelBanks := []struct {
		level string
		bank  []seedQuestion
	}{
		{"A1", a1Questions},
		{"A2", a2Questions},
		{"B1", b1Questions},
		{"B2", b2Questions},
	}

	created := 0
	for _, lb := range levelBanks {
		for idx := 1; idx <= 3; idx++ {
			slug := fmt.Sprintf("%s-praksis-%02d", strings.ToLower(lb.level), idx)
			title := fmt.Sprintf("%s praksis %d", lb.level, idx)
			description := fmt.Sprintf("Reelle oppgaver for nivå %s", lb.level)
			if err := createTest(ctx, pool, slug, title, description, lb.level, false, lb.bank); err != nil {
				log.Fatal().Err(err).Str("slug", slug).Msg("Failed to seed test")
			}
			created++
		}
	}

	// One fill-in test and one restricted test for gate demos.
	if err := createTest(ctx, pool, "fyll-inn-demo", "Fyll inn demo", "Skriv svaret selv", "A1", false, fillQuestions); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed fill-in test")
	}
	created++
	if err := createTest(ctx, pool, "a2-laerer-test", "A2 lærerstyrt test", "Kun for tildelte elever", "A2", true, a2Questions); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed restricted test")
	}
	created++

	fmt.Printf("\nSeed complete. Added %d tests.\n", created)
}

func createTest(ctx context.Context, pool *pgxpool.Pool, slug, title, description, level string, restricted bool, bank []seedQuestion) error {
	var testID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO tests (title, slug, description, level, stream, estimated_minutes, is_published, is_restricted)
		 VALUES ($1, $2, $3, $4, 'bokmaal', 12, TRUE, $5)
		 RETURNING id`,
		title, slug, description, level, restricted,
	).Scan(&testID)
	if err != nil {
		return err
	}

	for order, q := range bank {
		var questionID int64
		err := pool.QueryRow(ctx,
			`INSERT INTO questions (test_id, text, question_type, order_num)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			testID, q.text, q.questionType, order+1,
		).Scan(&questionID)
		if err != nil {
			return err
		}

		for optOrder, opt := range q.options {
			if _, err := pool.Exec(ctx,
				`INSERT INTO options (question_id, text, is_correct, order_num)
				 VALUES ($1, $2, $3, $4)`,
				questionID, opt.text, opt.correct, optOrder+1); err != nil {
				return err
			}
		}
	}
	return nil
}
