// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package classifier

import (
	"fmt"
	"regexp"
	"strings"
)

// blobSeparator joins the name and tags into the searchable blob.
const blobSeparator = " | "

// compiledLexicons holds the per-category union regexes. Compilation
// happens once at engine construction; a bad pattern is a configuration
// fault that prevents startup rather than a per-record error.
type compiledLexicons struct {
	strong [numClasses]*regexp.Regexp
	soft   [numClasses]*regexp.Regexp
}

// compileLexicons builds case-insensitive union regexes from the configured
// pattern lists. Empty pattern lists compile to nil (never matching).
func compileLexicons(cfg LexiconsConfig) (*compiledLexicons, error) {
	perClass := [numClasses]Lexicon{cfg.MainDish, cfg.Dessert, cfg.Beverage}

	out := &compiledLexicons{}
	for i, lex := range perClass {
		strong, err := compileUnion(lex.Strong)
		if err != nil {
			return nil, fmt.Errorf("strong lexicon for %s: %w", categories[i], err)
		}
		soft, err := compileUnion(lex.Soft)
		if err != nil {
			return nil, fmt.Errorf("soft lexicon for %s: %w", categories[i], err)
		}
		out.strong[i] = strong
		out.soft[i] = soft
	}
	return out, nil
}

// compileUnion combines patterns into one case-insensitive alternation.
func compileUnion(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	return regexp.Compile("(?i)(?:" + strings.Join(patterns, "|") + ")")
}

// LexicalSignal is the output of the lexical extractor: one strong presence
// flag and one soft match count per category, plus the blob they were
// derived from (the arbiter's fast path re-inspects it).
type LexicalSignal struct {
	Strong [numClasses]int
	Soft   [numClasses]int
	Blob   string
}

// buildBlob concatenates the lowercased name and tags with a separator.
func buildBlob(name string, tags []string) string {
	parts := make([]string, 0, 1+len(tags))
	parts = append(parts, strings.ToLower(name))
	for _, t := range tags {
		parts = append(parts, strings.ToLower(t))
	}
	return strings.Join(parts, blobSeparator)
}

// extract matches the blob against both tiers of every category's lexicon.
// Strong hits are binary presence; soft hits count non-overlapping matches.
func (c *compiledLexicons) extract(name string, tags []string) LexicalSignal {
	sig := LexicalSignal{Blob: buildBlob(name, tags)}

	for i := 0; i < numClasses; i++ {
		if re := c.strong[i]; re != nil && re.MatchString(sig.Blob) {
			sig.Strong[i] = 1
		}
		if re := c.soft[i]; re != nil {
			sig.Soft[i] = len(re.FindAllStringIndex(sig.Blob, -1))
		}
	}
	return sig
}

// defaultLexicons returns the reference pattern lists.
//
//nolint:funlen // flat data tables
func defaultLexicons() LexiconsConfig {
	return LexiconsConfig{
		MainDish: Lexicon{
			Strong: []string{
				`\bstew\b`, `\bcurry\b`, `\bchili\b`, `\broast(ed)?\b`,
				`\bbake[ds]?\b`, `\bgrill(ed)?\b`, `\bstir[-\s]*fry\b`, `\bmeatloaf\b`,
				`\bsoup\b`, `\brag(u|out)\b`, `\bpot\s*pie\b`, `\bshepherd('s)?\s*pie\b`,
				`\btikka\b`, `\bmasala\b`, `\bfajita(s)?\b`, `\bskillet\b`,
				`\bdal\b`, `\bdaal\b`, `\bdahl\b`, `\bpotato\s*salad\b`,
				`\bburger(s)?\b`, `\bbarbecue\b`, `\bbbq\b`,
				`\bchicken\b`, `\bbeef\b`, `\bpork\b`, `\bturkey\b`, `\bquesadilla(s)?\b`,
				`\bfish\b`, `\bseafood\b`, `\bshrimp\b`, `\bsausage\b`, `\bmeat\b`,
				`\bspinach\b`, `\bbroccoli\b`, `\beggplant(s)?\b`, `\blentil(s)?\b`,
				`\bbalsamic\b`, `\bparmesan\b`, `\bmozzarella\b`, `\bcheddar\b`,
				`\bfeta\b`, `\bblue\s*chese\b`, `\bvegetables\b`, `\bnoodle(s)?\b`,
				`\bpea(s)?\b`, `\bham\b`, `\bpotato(es)?\b`, `\bpasta\b`, `\bgratin\b`,
				`\bsalsa\b`, `\bmeatball(s)?\b`, `\bveggie(s)?\b`, `\bquiche\b`,
				`\bhomemade\s*beenie\s*weenie\b`, `\bketchup\b`, `\bpickle(s)?\b`, `\bmarinade\b`,
			},
			Soft: []string{
				`\brice\b`, `\bpasta\b`, `\bnoodle(s)?\b`, `\btaco(s)?\b`, `\bpizza\b`,
				`\bsandwich\b`, `\bwrap\b`, `\bsalad\b`, `\begg(s)?\b`,
				`\bham\b`, `\bbacon\b`, `\bkebab\b`, `\bpopcorn\b`,
				`\bvinaigrette\b`, `\bgarlic\b`, `\bonion(s)?\b`, `\bpepper\b`, `\bherb(s)?\b`,
				`\bspice(s)?\b`, `\bvegan\b`, `\btofu\b`, `\bmushroom(s)?\b`, `\bsauce\b`,
				`\bcasserole\b`, `\bcantonese\b`, `\bavocado\b`,
			},
		},
		Dessert: Lexicon{
			Strong: []string{
				`\bice\s*cream\b`, `\bcheesecake\b`, `\bbrownie(s)?\b`, `\bcookie(s)?\b`,
				`\bmacaron(s)?\b`, `\bdoughnut(s)?\b`, `\bdonut(s)?\b`, `\bfrost(ing|ed)\b`,
				`\bmeringue\b`, `\btruffle(s)?\b`, `\bmarshmallow(s)?\b`, `\bshortcake\b`,
				`\bcandy\b`, `\bsyrup\b`, `\bbiscuit(s)?\b`, `\bapple\s*pie\b`, `\bpudding\b`, `\bchocolate\s*cake\b`,
				`\b(apple|banana|pumpkin|zucchini|carrot|lemon|cranberry|pecan|walnut|nut|cinnamon)\s+(bread|loaf)\b`,
				`\bsweet\b`, `\bkinky\s*russian\b`, `\bmocha\b`, `\bmatcha\b`, `\bmint\s*tea\b`,
				`\bwatermelon\s*and\s*berry\s*soup\b`,
			},
			Soft: []string{
				`\bcake\b`, `\bpie\b`, `\btart\b`, `\bmuffin(s)?\b`, `\bpancake(s)?\b`,
				`\bwaffle(s)?\b`, `\bcaramel\b`, `\bchocolate\b`, `\bvanilla\b`, `\bhoney\b`,
				`\bcustard\b`, `\bganache\b`, `\bcream\b`, `\bbutterscotch\b`,
				`\bbanana\b`, `\bapple\b`, `\bberry\b`, `\bsugar\b`, `\bfruit(s)?\b`,
				`\bpeanut\s*butter\b`, `\bapple(s)?\b`,
			},
		},
		Beverage: Lexicon{
			Strong: []string{
				`\bjuice\b`, `\bsmoothie\b`, `\bmilkshake\b`, `\bshake\b`,
				`\blatte\b`, `\bcappuccino\b`, `\bespresso\b`, `\blemonade\b`, `\bsoda\b`,
				`\bcocktail\b`, `\bpunch\b`, `\bbroth\b`, `\bmojito\b`, `\bspritzer\b`,
				`\bbeverage\b`, `\balcoholic\b`, `\bmartini\b`,
			},
			Soft: []string{
				`\bdrink\b`, `\biced\b`, `\bsparkling\b`, `\binfused\b`, `\btea\b`, `\bcoffee\b`,
			},
		},
	}
}
