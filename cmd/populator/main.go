// Populator: seeds the species catalog from the public PokeAPI
// (https://pokeapi.co). Run once before serving; rows are upserted, so
// re-running refreshes the catalog in place.
//
//	populator [-limit 151] [-offset 0]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Lewis3ai/INFOA1test/config"
	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/repositories"
)

const apiBase = "https://pokeapi.co/api/v2"

// pokeAPIDetail is the subset of the PokeAPI pokemon payload we keep.
// Height comes in decimetres and weight in hectograms; both are stored
// in metres/kilograms.
type pokeAPIDetail struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Stats  []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

type pokeAPIList struct {
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

func main() {
	limit := flag.Int("limit", 151, "number of species to fetch")
	offset := flag.Int("offset", 0, "catalog offset to start from")
	flag.Parse()

	cfg := config.Load()
	db := config.InitDB(cfg)
	catalog := repositories.NewPokemonRepository(db)

	client := &http.Client{Timeout: 15 * time.Second}

	var list pokeAPIList
	listURL := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", apiBase, *limit, *offset)
	if err := getJSON(client, listURL, &list); err != nil {
		log.Fatalf("[populator] list fetch: %v", err)
	}

	ok := 0
	for _, entry := range list.Results {
		var d pokeAPIDetail
		if err := getJSON(client, entry.URL, &d); err != nil {
			log.Printf("[populator] skip %s: %v", entry.Name, err)
			continue
		}
		if err := catalog.Upsert(toCatalogRow(&d)); err != nil {
			log.Printf("[populator] upsert %s: %v", d.Name, err)
			continue
		}
		ok++
	}
	log.Printf("[populator] done: %d/%d species upserted", ok, len(list.Results))
}

func getJSON(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func toCatalogRow(d *pokeAPIDetail) *models.Pokemon {
	p := &models.Pokemon{
		ID:     d.ID,
		Name:   d.Name,
		Height: float64(d.Height) / 10, // dm -> m
		Weight: float64(d.Weight) / 10, // hg -> kg
	}
	for _, s := range d.Stats {
		switch s.Stat.Name {
		case "hp":
			p.HP = s.BaseStat
		case "attack":
			p.Attack = s.BaseStat
		case "defense":
			p.Defense = s.BaseStat
		case "special-attack":
			p.SpAttack = s.BaseStat
		case "special-defense":
			p.SpDefense = s.BaseStat
		case "speed":
			p.Speed = s.BaseStat
		}
	}
	for _, t := range d.Types {
		switch t.Slot {
		case 1:
			p.Type1 = t.Type.Name
		case 2:
			name := t.Type.Name
			p.Type2 = &name
		}
	}
	return p
}
