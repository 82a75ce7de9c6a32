package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gotd/tl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `double ? = Double;
string ? = String;

int32 = Int32;
int53 = Int53;
int64 = Int64;
bytes = Bytes;

boolFalse = Bool;
boolTrue = Bool;

vector {t:Type} # [ t ] = Vector t;

//@description An object of this type is returned on a successful function call for certain functions
ok = Ok;

//@class ChatAction @description Describes the different types of activity in a chat

//@description The user is typing a message
chatActionTyping = ChatAction;

//@description The user is uploading a photo @progress Upload progress, as a percentage
chatActionUploadingPhoto progress:int32 = ChatAction;

//@description Represents a user @id User identifier @first_name First name of the user @photo_ids Identifiers of photos @access_hash Access hash
user id:int53 first_name:string photo_ids:vector<int64> access_hash:int64 = User;

//@class Update @description Contains notifications about data changes

//@description A user's action in a chat has changed @chat_id Chat identifier @action The action
updateChatAction chat_id:int53 action:ChatAction = Update;

---functions---

//@description Returns the current user
getMe = User;

//@description Sends a notification about user activity in a chat @chat_id Chat identifier @action The action description; pass null to cancel the currently active action
sendChatAction chat_id:int53 action:ChatAction = Ok;

//@description Returns the last chat action @chat_id Chat identifier
getChatAction chat_id:int53 = ChatAction;
`

func newTestGenerator(t *testing.T) *Generator {
	schema, err := tl.Parse(strings.NewReader(testSchema))
	require.NoError(t, err)
	g, err := New(schema, Options{})
	require.NoError(t, err)
	return g
}

func TestNames(t *testing.T) {
	for _, tt := range []struct {
		in, goName, file string
	}{
		{"chatActionTyping", "ChatActionTyping", "chat_action_typing"},
		{"chat_id", "ChatID", "chat_id"},
		{"use_test_dc", "UseTestDC", "use_test_dc"},
		{"authenticationCodeTypeSms", "AuthenticationCodeTypeSMS", "authentication_code_type_sms"},
		{"api_hash", "APIHash", "api_hash"},
		{"getMe", "GetMe", "get_me"},
		{"user", "User", "user"},
		{"first_name", "FirstName", "first_name"},
		{"pageBlockTable", "PageBlockTable", "page_block_table"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.goName, goName(tt.in))
			assert.Equal(t, tt.file, fileName(tt.in))
		})
	}
	assert.Equal(t, "u", receiverName("User"))
	assert.Equal(t, "o", receiverName("BoolFalse"))
	assert.Equal(t, "message", lowerFirst("Message"))
	assert.Equal(t, "", lowerFirst(""))
}

func TestBuildSchema(t *testing.T) {
	g := newTestGenerator(t)
	s := g.schema

	var types []string
	for _, typ := range s.Types {
		types = append(types, typ.GoName)
	}
	assert.ElementsMatch(t, []string{"Ok", "ChatActionTyping", "ChatActionUploadingPhoto", "User", "UpdateChatAction"}, types)

	var functions []string
	for _, f := range s.Functions {
		functions = append(functions, f.GoName)
	}
	assert.ElementsMatch(t, []string{"GetMeRequest", "SendChatActionRequest", "GetChatActionRequest"}, functions)

	require.Len(t, s.Classes, 2)
	assert.Equal(t, "ChatAction", s.Classes[0].Name)
	assert.Equal(t, "Update", s.Classes[1].Name)
	assert.Len(t, s.Classes[0].Constructors, 2)

	for _, typ := range s.Types {
		if typ.GoName != "User" {
			continue
		}
		assert.Empty(t, typ.Class)
		require.Len(t, typ.Fields, 4)
		assert.Equal(t, kindInt53, typ.Fields[0].Type.Kind)
		assert.Equal(t, "User identifier", typ.Fields[0].Doc)
		assert.Equal(t, kindVector, typ.Fields[2].Type.Kind)
		assert.Equal(t, kindInt64, typ.Fields[2].Type.Elem.Kind)
		assert.Equal(t, kindInt64, typ.Fields[3].Type.Kind)
	}
}

func TestBuildSchemaUnknownType(t *testing.T) {
	schema, err := tl.Parse(strings.NewReader(testSchema + "\n//@description Broken @x X\nbroken x:Missing = Ok;\n"))
	require.NoError(t, err)
	_, err = New(schema, Options{})
	require.ErrorContains(t, err, "Missing")
}

func TestFiles(t *testing.T) {
	files, err := newTestGenerator(t).Files()
	require.NoError(t, err)

	for _, name := range []string{
		"tl_ok_gen.go",
		"tl_user_gen.go",
		"tl_chat_action_typing_gen.go",
		"tl_chat_action_uploading_photo_gen.go",
		"tl_update_chat_action_gen.go",
		"tl_get_me_gen.go",
		"tl_send_chat_action_gen.go",
		"tl_get_chat_action_gen.go",
		"tl_chat_action_class_gen.go",
		"tl_update_class_gen.go",
		"tl_handlers_gen.go",
		"tl_client_gen.go",
		"tl_registry_gen.go",
	} {
		require.Contains(t, files, name)
		assert.True(t, strings.HasPrefix(string(files[name]), "// Code generated by tdgen, DO NOT EDIT.\n"), name)
	}
	assert.Len(t, files, 13)

	user := string(files["tl_user_gen.go"])
	assert.Contains(t, user, "package tdapi")
	assert.Contains(t, user, "type User struct {")
	assert.Contains(t, user, "b.PutLong(u.AccessHash)")
	assert.Contains(t, user, "func (u *User) GetFirstName() (value string) {")
	assert.Contains(t, user, "func NewUserBuilder() *UserBuilder {")

	class := string(files["tl_chat_action_class_gen.go"])
	assert.Contains(t, class, "// Describes the different types of activity in a chat.\n")
	assert.Contains(t, class, "func DecodeTDLibJSONChatAction(buf tdjson.Decoder) (ChatActionClass, error) {")
	assert.Contains(t, class, "type ChatActionBox struct {")

	assert.Contains(t, string(files["tl_send_chat_action_gen.go"]),
		"func (c *Client) SendChatAction(ctx context.Context, request *SendChatActionRequest) error {")
	assert.Contains(t, string(files["tl_get_me_gen.go"]),
		"func (c *Client) GetMe(ctx context.Context) (*User, error) {")
	assert.Contains(t, string(files["tl_get_chat_action_gen.go"]),
		"func (c *Client) GetChatAction(ctx context.Context, request *GetChatActionRequest) (ChatActionClass, error) {")
	assert.Contains(t, string(files["tl_handlers_gen.go"]), "func (u UpdateDispatcher) OnChatAction(handler ChatActionHandler) {")
}

func TestWriteDir(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "tl_removed_gen.go")
	kept := filepath.Join(dir, "tdapi.go")
	require.NoError(t, os.WriteFile(stale, []byte("package tdapi\n"), 0o644))
	require.NoError(t, os.WriteFile(kept, []byte("package tdapi\n"), 0o644))

	require.NoError(t, newTestGenerator(t).WriteDir(dir, true))
	assert.NoFileExists(t, stale)
	assert.FileExists(t, kept)
	assert.FileExists(t, filepath.Join(dir, "tl_user_gen.go"))
}
