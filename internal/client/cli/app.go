// Package cli implements the interactive shell of the asset ledger client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/avasiljevs/assetledger/internal/client/client"
	"github.com/avasiljevs/assetledger/internal/client/config"
)

// LedgerClient is the backend surface the CLI drives. *client.GRPCClient
// satisfies it; tests provide a stub.
type LedgerClient interface {
	IsLoggedIn() bool
	Logout()
	Register(ctx context.Context, userName string, password []byte) (string, error)
	Login(ctx context.Context, userName string, password []byte) error
	Ping(ctx context.Context) error
	CreateAsset(ctx context.Context, name string, sizeBytes uint64, description string, tags []string) (uint64, error)
	UpdateAsset(ctx context.Context, assetID uint64, name string, sizeBytes uint64, description string, tags []string) error
	TransferAssetOwnership(ctx context.Context, assetID uint64, newOwner string) error
	DeleteAsset(ctx context.Context, assetID uint64) error
	GetAssetInformation(ctx context.Context, assetID uint64) (*client.AssetInfo, error)
	VerifyAccessStatus(ctx context.Context, assetID uint64, principal string) (*client.AccessStatus, error)
	GetAssetOwner(ctx context.Context, assetID uint64) (string, error)
	GetRegistryStatistics(ctx context.Context) (uint64, string, error)
	GetAssetUploadUrl(ctx context.Context, assetID uint64) (string, string, error)
	GetAssetDownloadUrl(ctx context.Context, assetID uint64) (string, error)
}

type App struct {
	config   *config.Config
	client   LedgerClient
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(cfg *config.Config, c LedgerClient) *App {
	return &App{
		config: cfg,
		client: c,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) readAssetID() (uint64, error) {
	text, err := GetSimpleText(a.reader, "Asset id", a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid asset id: %q", text)
	}
	return id, nil
}

func (a *App) readContentFields() (string, uint64, string, []string, error) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return "", 0, "", nil, err
	}
	sizeText, err := GetSimpleText(a.reader, "Size (bytes)", a.out)
	if err != nil {
		return "", 0, "", nil, err
	}
	size, err := strconv.ParseUint(sizeText, 10, 64)
	if err != nil {
		return "", 0, "", nil, fmt.Errorf("not a valid size: %q", sizeText)
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return "", 0, "", nil, err
	}
	tags, err := GetTagList(a.reader, a.out)
	if err != nil {
		return "", 0, "", nil, err
	}
	return name, size, description, tags, nil
}

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	id, err := a.client.Register(ctx, userName, password)
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Registered, principal id:", id)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.Login(ctx, userName, password); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}
	a.userName = userName
	fmt.Fprintln(a.out, "Logged in")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable:", err)
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

func (a *App) Create(ctx context.Context) error {
	name, size, description, tags, err := a.readContentFields()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	id, err := a.client.CreateAsset(ctx, name, size, description, tags)
	if err != nil {
		fmt.Fprintln(a.out, "Create failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Created asset", id)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}
	name, size, description, tags, err := a.readContentFields()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.UpdateAsset(ctx, id, name, size, description, tags); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Updated asset", id)
	return nil
}

func (a *App) Transfer(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}
	newOwner, err := GetSimpleText(a.reader, "New owner (principal id)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.TransferAssetOwnership(ctx, id, newOwner); err != nil {
		fmt.Fprintln(a.out, "Transfer failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Transferred asset", id, "to", newOwner)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.client.DeleteAsset(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Delete failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted asset", id)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	info, err := a.client.GetAssetInformation(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Lookup failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Asset %d\n  name: %s\n  owner: %s\n  size: %d\n  created_at: %d\n  description: %s\n  tags: %v\n",
		info.ID, info.Name, info.Owner, info.SizeBytes, info.CreatedAt, info.Description, info.Tags)
	return nil
}

func (a *App) Access(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}
	principal, err := GetSimpleText(a.reader, "Principal id", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	st, err := a.client.VerifyAccessStatus(ctx, id, principal)
	if err != nil {
		fmt.Fprintln(a.out, "Access probe failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "granted=%v owner=%v can_read=%v\n", st.HasGrantedAccess, st.IsAssetOwner, st.CanReadAsset)
	return nil
}

func (a *App) Owner(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	owner, err := a.client.GetAssetOwner(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Lookup failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Owner:", owner)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	total, admin, err := a.client.GetRegistryStatistics(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Lookup failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "total assets registered: %d\nadministrator: %s\n", total, admin)
	return nil
}

func (a *App) Upload(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	url, key, err := a.client.GetAssetUploadUrl(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Upload URL failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "PUT your payload to:\n%s\n(storage key %s)\n", url, key)
	return nil
}

func (a *App) Download(ctx context.Context) error {
	id, err := a.readAssetID()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	url, err := a.client.GetAssetDownloadUrl(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Download URL failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "GET your payload from:", url)
	return nil
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return "(" + a.userName + ")"
	}
	return ""
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the asset ledger CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
