// Admin CLI: user and catalog maintenance that never goes through HTTP.
// Talks straight to the database via the same repositories the server
// uses.
//
// Usage:
//
//	admin init
//	admin create-user <username> <email> <password>
//	admin delete-user <username>
//	admin get-user <username>
//	admin get-users
//	admin change-email <username> <new-email>
//	admin add-pokemon <username> <pokemon-id> [nickname]
//	admin remove-pokemon <username> <pokemon-id>
//	admin get-user-pokemon <username>
//	admin list-pokemon
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Lewis3ai/INFOA1test/config"
	"github.com/Lewis3ai/INFOA1test/core"
	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/repositories"
	"github.com/Lewis3ai/INFOA1test/utils"
)

type app struct {
	users   repositories.UserRepository
	catalog repositories.PokemonRepository
	col     repositories.UserPokemonRepository
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	a := &app{
		users:   repositories.NewUserRepository(db),
		catalog: repositories.NewPokemonRepository(db),
		col:     repositories.NewUserPokemonRepository(db),
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "init":
		if err = config.ResetDB(db); err == nil {
			fmt.Println("database reset: schema dropped and recreated")
		}
	case "create-user":
		err = a.createUser(args)
	case "delete-user":
		err = a.deleteUser(args)
	case "get-user":
		err = a.getUser(args)
	case "get-users":
		err = a.getUsers()
	case "change-email":
		err = a.changeEmail(args)
	case "add-pokemon":
		err = a.addPokemon(args)
	case "remove-pokemon":
		err = a.removePokemon(args)
	case "get-user-pokemon":
		err = a.getUserPokemon(args)
	case "list-pokemon":
		err = a.listPokemon()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("admin %s: %v", cmd, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: admin <command> [args]

commands:
  init                                       drop and recreate the schema (destructive)
  create-user <username> <email> <password>  add an account
  delete-user <username>                     release collection, then remove account
  get-user <username>                        show one account
  get-users                                  list all accounts
  change-email <username> <new-email>        update an account email
  add-pokemon <username> <pokemon-id> [nick] capture a species for a user
  remove-pokemon <username> <pokemon-id>     release one owned instance
  get-user-pokemon <username>                list a user's collection
  list-pokemon                               dump the species catalog`)
}

func (a *app) createUser(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("want <username> <email> <password>")
	}
	hash, err := utils.HashPassword(args[2])
	if err != nil {
		return err
	}
	u := &models.User{Username: args[0], Email: args[1], Password: hash}
	if err := a.users.Create(u); err != nil {
		if repositories.IsDuplicate(err) {
			return fmt.Errorf("username or email already exists")
		}
		return err
	}
	fmt.Printf("user %d - %s created\n", u.ID, u.Username)
	return nil
}

// deleteUser releases the whole collection first; the users table has no
// ON DELETE CASCADE, so ownership rows must go before the account.
func (a *app) deleteUser(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("want <username>")
	}
	u, err := a.users.FindByUsername(args[0])
	if err != nil {
		return fmt.Errorf("no such user %q", args[0])
	}
	if err := a.col.DeleteAllForUser(u.ID); err != nil {
		return err
	}
	if err := a.users.Delete(u.ID); err != nil {
		return err
	}
	fmt.Printf("user %s deleted\n", u.Username)
	return nil
}

func (a *app) getUser(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("want <username>")
	}
	u, err := a.users.FindByUsername(args[0])
	if err != nil {
		return fmt.Errorf("no such user %q", args[0])
	}
	printUsers([]models.User{*u})
	return nil
}

func (a *app) getUsers() error {
	users, err := a.users.List()
	if err != nil {
		return err
	}
	printUsers(users)
	return nil
}

func (a *app) changeEmail(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("want <username> <new-email>")
	}
	u, err := a.users.FindByUsername(args[0])
	if err != nil {
		return fmt.Errorf("no such user %q", args[0])
	}
	u.Email = args[1]
	if err := a.users.Update(u); err != nil {
		if repositories.IsDuplicate(err) {
			return fmt.Errorf("email already in use")
		}
		return err
	}
	fmt.Printf("user %s email changed to %s\n", u.Username, u.Email)
	return nil
}

func (a *app) addPokemon(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("want <username> <pokemon-id> [nickname]")
	}
	u, err := a.users.FindByUsername(args[0])
	if err != nil {
		return fmt.Errorf("no such user %q", args[0])
	}
	pid, err := parseID(args[1])
	if err != nil {
		return err
	}
	species, err := a.catalog.FindByID(pid)
	if err != nil {
		return fmt.Errorf("no such pokemon %d", pid)
	}
	nick := ""
	if len(args) == 3 {
		nick = args[2]
	}
	up := &models.UserPokemon{
		UserID:    u.ID,
		PokemonID: species.ID,
		Name:      core.NormalizeNickname(nick, species.Name),
	}
	if err := a.col.Create(up); err != nil {
		return err
	}
	fmt.Printf("%s saved for %s as %q (id %d)\n", species.Name, u.Username, up.Name, up.ID)
	return nil
}

// removePokemon releases one owned instance of the species, matching by
// species id rather than collection row id for operator convenience.
func (a *app) removePokemon(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("want <username> <pokemon-id>")
	}
	u, err := a.users.FindByUsername(args[0])
	if err != nil {
		return fmt.Errorf("no such user %q", args[0])
	}
	pid, err := parseID(args[1])
	if err != nil {
		return err
	}
	up, err := a.col.FindByUserAndPokemon(u.ID, pid)
	if err != nil {
		return fmt.Errorf("%s owns no pokemon %d", u.Username, pid)
	}
	if err := a.col.Delete(up.ID, u.ID); err != nil {
		return err
	}
	fmt.Printf("released %q (id %d) from %s\n", up.Name, up.ID, u.Username)
	return nil
}

func (a *app) getUserPokemon(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("want <username>")
	}
	u, err := a.users.FindByUsername(args[0])
	if err != nil {
		return fmt.Errorf("no such user %q", args[0])
	}
	list, err := a.col.ListByUser(u.ID)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tSPECIES\tNICKNAME\tCAUGHT")
	for _, up := range list {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", up.ID, up.PokemonID, up.Name, up.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func (a *app) listPokemon() error {
	list, err := a.catalog.List()
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tTYPE1\tTYPE2\tHP\tATK\tDEF\tSPATK\tSPDEF\tSPD")
	for _, p := range list {
		t2 := "-"
		if p.Type2 != nil {
			t2 = *p.Type2
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			p.ID, p.Name, p.Type1, t2, p.HP, p.Attack, p.Defense, p.SpAttack, p.SpDefense, p.Speed)
	}
	return w.Flush()
}

func printUsers(users []models.User) {
	w := newTable()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.CreatedAt.Format("2006-01-02"))
	}
	_ = w.Flush()
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func parseID(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("bad id %q", s)
	}
	return uint(id64), nil
}
